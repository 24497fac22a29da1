package sqlite

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"time"

	"github.com/fwojciec/gmdocs"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ gmdocs.BuildService = (*BuildService)(nil)

// BuildService implements gmdocs.BuildService using SQLite.
type BuildService struct {
	db *DB
}

// NewBuildService creates a new BuildService.
func NewBuildService(db *DB) *BuildService {
	return &BuildService{db: db}
}

// CreateBuild stores every record of the manual under a new build.
func (s *BuildService) CreateBuild(ctx context.Context, build *gmdocs.Build, m *gmdocs.Manual) error {
	if err := build.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	id := uuid.New().String()
	createdAt := time.Now().UTC()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO builds (id, digest, functions, variables, constants, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, build.Digest, len(m.Functions), len(m.Variables), len(m.Constants),
		createdAt.Format(time.RFC3339)); err != nil {
		return err
	}

	for _, name := range sortedKeys(m.Functions) {
		if err := insertFunction(ctx, tx, id, m.Functions[name]); err != nil {
			return err
		}
	}
	for _, name := range sortedKeys(m.Variables) {
		v := m.Variables[name]
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO variables (build_id, name, example, description, returns, link)
			VALUES (?, ?, ?, ?, ?, ?)
		`, id, v.Name, v.Example, v.Description, v.Returns, v.Link); err != nil {
			return err
		}
	}
	for _, name := range sortedKeys(m.Constants) {
		if err := insertConstant(ctx, tx, id, m.Constants[name]); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	build.ID = id
	build.Functions = len(m.Functions)
	build.Variables = len(m.Variables)
	build.Constants = len(m.Constants)
	build.CreatedAt = createdAt.Truncate(time.Second)
	return nil
}

func insertFunction(ctx context.Context, tx *sql.Tx, buildID string, f *gmdocs.Function) error {
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO functions (build_id, name, required_parameters, is_variadic, example, description, returns, link)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, buildID, f.Name, f.RequiredParameters, f.IsVariadic, f.Example, f.Description, f.Returns, f.Link); err != nil {
		return err
	}
	for i, p := range f.Parameters {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO parameters (build_id, function_name, position, parameter, description)
			VALUES (?, ?, ?, ?, ?)
		`, buildID, f.Name, i, p.Parameter, p.Description); err != nil {
			return err
		}
	}
	return nil
}

func insertConstant(ctx context.Context, tx *sql.Tx, buildID string, c *gmdocs.Constant) error {
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO constants (build_id, name, description, link)
		VALUES (?, ?, ?, ?)
	`, buildID, c.Name, c.Description, c.Link); err != nil {
		return err
	}
	for header, value := range c.SecondaryDescriptors {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO constant_descriptors (build_id, constant_name, header, value)
			VALUES (?, ?, ?, ?)
		`, buildID, c.Name, header, value); err != nil {
			return err
		}
	}
	return nil
}

// FindBuild retrieves a build by ID.
func (s *BuildService) FindBuild(ctx context.Context, id string) (*gmdocs.Build, error) {
	build, err := scanBuild(s.db.QueryRowContext(ctx, `
		SELECT id, digest, functions, variables, constants, created_at
		FROM builds
		WHERE id = ?
	`, id))
	if err == sql.ErrNoRows {
		return nil, gmdocs.Errorf(gmdocs.ENOTFOUND, "build not found")
	}
	return build, err
}

// FindBuilds retrieves builds, newest first.
func (s *BuildService) FindBuilds(ctx context.Context, filter gmdocs.BuildFilter) ([]*gmdocs.Build, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, digest, functions, variables, constants, created_at FROM builds")
	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var builds []*gmdocs.Build
	for rows.Next() {
		build, err := scanBuild(rows)
		if err != nil {
			return nil, err
		}
		builds = append(builds, build)
	}
	return builds, rows.Err()
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanBuild(row scanner) (*gmdocs.Build, error) {
	var build gmdocs.Build
	var createdAt string
	if err := row.Scan(&build.ID, &build.Digest, &build.Functions, &build.Variables, &build.Constants, &createdAt); err != nil {
		return nil, err
	}
	t, err := parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}
	build.CreatedAt = t
	return &build, nil
}

// FindFunction retrieves a function of a build with its parameters in
// order.
func (s *BuildService) FindFunction(ctx context.Context, buildID, name string) (*gmdocs.Function, error) {
	var f gmdocs.Function
	err := s.db.QueryRowContext(ctx, `
		SELECT name, required_parameters, is_variadic, example, description, returns, link
		FROM functions
		WHERE build_id = ? AND name = ?
	`, buildID, name).Scan(&f.Name, &f.RequiredParameters, &f.IsVariadic, &f.Example, &f.Description, &f.Returns, &f.Link)
	if err == sql.ErrNoRows {
		return nil, gmdocs.Errorf(gmdocs.ENOTFOUND, "function %q not found", name)
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT parameter, description
		FROM parameters
		WHERE build_id = ? AND function_name = ?
		ORDER BY position
	`, buildID, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	f.Parameters = []gmdocs.Parameter{}
	for rows.Next() {
		var p gmdocs.Parameter
		if err := rows.Scan(&p.Parameter, &p.Description); err != nil {
			return nil, err
		}
		f.Parameters = append(f.Parameters, p)
	}
	return &f, rows.Err()
}

// FindConstant retrieves a constant of a build with its secondary
// descriptors.
func (s *BuildService) FindConstant(ctx context.Context, buildID, name string) (*gmdocs.Constant, error) {
	var c gmdocs.Constant
	err := s.db.QueryRowContext(ctx, `
		SELECT name, description, link
		FROM constants
		WHERE build_id = ? AND name = ?
	`, buildID, name).Scan(&c.Name, &c.Description, &c.Link)
	if err == sql.ErrNoRows {
		return nil, gmdocs.Errorf(gmdocs.ENOTFOUND, "constant %q not found", name)
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT header, value
		FROM constant_descriptors
		WHERE build_id = ? AND constant_name = ?
	`, buildID, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var header, value string
		if err := rows.Scan(&header, &value); err != nil {
			return nil, err
		}
		if c.SecondaryDescriptors == nil {
			c.SecondaryDescriptors = make(map[string]string)
		}
		c.SecondaryDescriptors[header] = value
	}
	return &c, rows.Err()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
