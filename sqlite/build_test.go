package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/gmdocs"
	"github.com/fwojciec/gmdocs/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManual() *gmdocs.Manual {
	m := gmdocs.NewManual()
	m.Functions["ds_list_add"] = &gmdocs.Function{
		Name: "ds_list_add",
		Parameters: []gmdocs.Parameter{
			{Parameter: "id", Description: "The list to add to"},
			{Parameter: "val", Description: "The value to add"},
			{Parameter: "[val2]", Description: "More values"},
		},
		RequiredParameters: 2,
		IsVariadic:         true,
		Example:            "```\nds_list_add(list, 1);\n```",
		Description:        "Adds values to a list.",
		Returns:            "N/A",
		Link:               "https://manual.yoyogames.com/ds_list_add.htm",
	}
	m.Functions["random"] = &gmdocs.Function{
		Name:       "random",
		Parameters: []gmdocs.Parameter{},
		Returns:    "Real",
		Link:       "https://manual.yoyogames.com/random.htm",
	}
	m.Variables["x"] = &gmdocs.Variable{
		Name:    "x",
		Returns: "Real",
		Link:    "https://manual.yoyogames.com/x.htm",
	}
	m.Constants["c_red"] = &gmdocs.Constant{
		Name:        "c_red",
		Description: "Red",
		Link:        "https://manual.yoyogames.com/colours.htm",
		SecondaryDescriptors: map[string]string{
			"Hex": "#FF0000",
			"RGB": "255, 0, 0",
		},
	}
	m.Constants["c_none"] = &gmdocs.Constant{
		Name: "c_none",
		Link: "https://manual.yoyogames.com/colours.htm",
	}
	return m
}

func TestBuildService_CreateBuild(t *testing.T) {
	t.Parallel()

	t.Run("creates build with generated ID, counts and timestamp", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewBuildService(setupTestDB(t))
		ctx := context.Background()

		build := &gmdocs.Build{Digest: "0123456789abcdef"}
		err := svc.CreateBuild(ctx, build, testManual())
		require.NoError(t, err)

		assert.NotEmpty(t, build.ID)
		assert.False(t, build.CreatedAt.IsZero())
		assert.Equal(t, 2, build.Functions)
		assert.Equal(t, 1, build.Variables)
		assert.Equal(t, 2, build.Constants)
	})

	t.Run("returns error for build without digest", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewBuildService(setupTestDB(t))

		err := svc.CreateBuild(context.Background(), &gmdocs.Build{}, testManual())
		require.Error(t, err)
		assert.Equal(t, gmdocs.EINVALID, gmdocs.ErrorCode(err))
	})

	t.Run("stores an empty manual", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewBuildService(setupTestDB(t))
		ctx := context.Background()

		build := &gmdocs.Build{Digest: "d"}
		require.NoError(t, svc.CreateBuild(ctx, build, gmdocs.NewManual()))

		found, err := svc.FindBuild(ctx, build.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, found.Functions)
	})
}

func TestBuildService_FindBuild(t *testing.T) {
	t.Parallel()

	t.Run("returns stored build", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewBuildService(setupTestDB(t))
		ctx := context.Background()

		build := &gmdocs.Build{Digest: "0123456789abcdef"}
		require.NoError(t, svc.CreateBuild(ctx, build, testManual()))

		found, err := svc.FindBuild(ctx, build.ID)
		require.NoError(t, err)
		assert.Equal(t, build, found)
	})

	t.Run("returns ENOTFOUND for unknown build", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewBuildService(setupTestDB(t))

		_, err := svc.FindBuild(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, gmdocs.ENOTFOUND, gmdocs.ErrorCode(err))
	})
}

func TestBuildService_FindBuilds(t *testing.T) {
	t.Parallel()

	t.Run("lists builds newest first", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewBuildService(setupTestDB(t))
		ctx := context.Background()

		first := &gmdocs.Build{Digest: "first"}
		require.NoError(t, svc.CreateBuild(ctx, first, testManual()))
		second := &gmdocs.Build{Digest: "second"}
		require.NoError(t, svc.CreateBuild(ctx, second, testManual()))

		builds, err := svc.FindBuilds(ctx, gmdocs.BuildFilter{})
		require.NoError(t, err)
		require.Len(t, builds, 2)
		assert.Equal(t, "second", builds[0].Digest)
		assert.Equal(t, "first", builds[1].Digest)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewBuildService(setupTestDB(t))
		ctx := context.Background()

		for _, d := range []string{"a", "b", "c"} {
			require.NoError(t, svc.CreateBuild(ctx, &gmdocs.Build{Digest: d}, gmdocs.NewManual()))
		}

		builds, err := svc.FindBuilds(ctx, gmdocs.BuildFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, builds, 1)
		assert.Equal(t, "b", builds[0].Digest)
	})
}

func TestBuildService_FindFunction(t *testing.T) {
	t.Parallel()

	t.Run("returns function with ordered parameters", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewBuildService(setupTestDB(t))
		ctx := context.Background()
		m := testManual()

		build := &gmdocs.Build{Digest: "d"}
		require.NoError(t, svc.CreateBuild(ctx, build, m))

		f, err := svc.FindFunction(ctx, build.ID, "ds_list_add")
		require.NoError(t, err)
		assert.Equal(t, m.Functions["ds_list_add"], f)
	})

	t.Run("returns empty parameter list for parameterless function", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewBuildService(setupTestDB(t))
		ctx := context.Background()

		build := &gmdocs.Build{Digest: "d"}
		require.NoError(t, svc.CreateBuild(ctx, build, testManual()))

		f, err := svc.FindFunction(ctx, build.ID, "random")
		require.NoError(t, err)
		assert.NotNil(t, f.Parameters)
		assert.Empty(t, f.Parameters)
	})

	t.Run("returns ENOTFOUND for unknown function", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewBuildService(setupTestDB(t))
		ctx := context.Background()

		build := &gmdocs.Build{Digest: "d"}
		require.NoError(t, svc.CreateBuild(ctx, build, testManual()))

		_, err := svc.FindFunction(ctx, build.ID, "nope")
		require.Error(t, err)
		assert.Equal(t, gmdocs.ENOTFOUND, gmdocs.ErrorCode(err))
	})
}

func TestBuildService_FindConstant(t *testing.T) {
	t.Parallel()

	t.Run("returns constant with secondary descriptors", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewBuildService(setupTestDB(t))
		ctx := context.Background()
		m := testManual()

		build := &gmdocs.Build{Digest: "d"}
		require.NoError(t, svc.CreateBuild(ctx, build, m))

		c, err := svc.FindConstant(ctx, build.ID, "c_red")
		require.NoError(t, err)
		assert.Equal(t, m.Constants["c_red"], c)
	})

	t.Run("keeps descriptors nil when there are none", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewBuildService(setupTestDB(t))
		ctx := context.Background()

		build := &gmdocs.Build{Digest: "d"}
		require.NoError(t, svc.CreateBuild(ctx, build, testManual()))

		c, err := svc.FindConstant(ctx, build.ID, "c_none")
		require.NoError(t, err)
		assert.Nil(t, c.SecondaryDescriptors)
	})

	t.Run("returns ENOTFOUND for constant of another build", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewBuildService(setupTestDB(t))
		ctx := context.Background()

		build := &gmdocs.Build{Digest: "d"}
		require.NoError(t, svc.CreateBuild(ctx, build, gmdocs.NewManual()))
		other := &gmdocs.Build{Digest: "e"}
		require.NoError(t, svc.CreateBuild(ctx, other, testManual()))

		_, err := svc.FindConstant(ctx, build.ID, "c_red")
		require.Error(t, err)
		assert.Equal(t, gmdocs.ENOTFOUND, gmdocs.ErrorCode(err))
	})
}
