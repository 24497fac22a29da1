package gmdocs

import (
	"context"
	"time"
)

// Build records one stored extraction of the manual.
type Build struct {
	ID        string
	Digest    string
	Functions int
	Variables int
	Constants int
	CreatedAt time.Time
}

// Validate returns an error if the build contains invalid fields.
func (b *Build) Validate() error {
	if b.Digest == "" {
		return Errorf(EINVALID, "build digest required")
	}
	return nil
}

// BuildFilter represents a filter passed to FindBuilds.
type BuildFilter struct {
	Limit  int
	Offset int
}

// BuildService stores manual builds.
type BuildService interface {
	// CreateBuild stores the manual and fills in the build's ID,
	// counts and CreatedAt.
	CreateBuild(ctx context.Context, build *Build, m *Manual) error

	// FindBuild returns a build by ID. Returns ENOTFOUND if it does not
	// exist.
	FindBuild(ctx context.Context, id string) (*Build, error)

	// FindBuilds returns builds, newest first.
	FindBuilds(ctx context.Context, filter BuildFilter) ([]*Build, error)

	// FindFunction returns a function of a build by name.
	FindFunction(ctx context.Context, buildID, name string) (*Function, error)

	// FindConstant returns a constant of a build by name.
	FindConstant(ctx context.Context, buildID, name string) (*Constant, error)
}
