package mock

import (
	"context"

	"github.com/fwojciec/gmdocs"
)

var _ gmdocs.BuildService = (*BuildService)(nil)

// BuildService is a mock implementation of gmdocs.BuildService.
type BuildService struct {
	CreateBuildFn  func(ctx context.Context, build *gmdocs.Build, m *gmdocs.Manual) error
	FindBuildFn    func(ctx context.Context, id string) (*gmdocs.Build, error)
	FindBuildsFn   func(ctx context.Context, filter gmdocs.BuildFilter) ([]*gmdocs.Build, error)
	FindFunctionFn func(ctx context.Context, buildID, name string) (*gmdocs.Function, error)
	FindConstantFn func(ctx context.Context, buildID, name string) (*gmdocs.Constant, error)
}

func (s *BuildService) CreateBuild(ctx context.Context, build *gmdocs.Build, m *gmdocs.Manual) error {
	return s.CreateBuildFn(ctx, build, m)
}

func (s *BuildService) FindBuild(ctx context.Context, id string) (*gmdocs.Build, error) {
	return s.FindBuildFn(ctx, id)
}

func (s *BuildService) FindBuilds(ctx context.Context, filter gmdocs.BuildFilter) ([]*gmdocs.Build, error) {
	return s.FindBuildsFn(ctx, filter)
}

func (s *BuildService) FindFunction(ctx context.Context, buildID, name string) (*gmdocs.Function, error) {
	return s.FindFunctionFn(ctx, buildID, name)
}

func (s *BuildService) FindConstant(ctx context.Context, buildID, name string) (*gmdocs.Constant, error) {
	return s.FindConstantFn(ctx, buildID, name)
}
