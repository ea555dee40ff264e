package generation_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takumakei/model-gen-go/generation"
	"github.com/takumakei/model-gen-go/model"
	"github.com/takumakei/model-gen-go/render"
)

type memFS struct {
	dirs  map[string]bool
	files map[string][]byte
	calls int

	dirErr   error
	writeErr error
}

func newMemFS() *memFS {
	return &memFS{dirs: map[string]bool{}, files: map[string][]byte{}}
}

func (m *memFS) EnsureDir(path string) error {
	m.calls++
	if m.dirErr != nil {
		return m.dirErr
	}
	m.dirs[path] = true
	return nil
}

func (m *memFS) Exists(path string) (bool, error) {
	m.calls++
	_, ok := m.files[path]
	return ok, nil
}

func (m *memFS) WriteAll(path string, data []byte) error {
	m.calls++
	if m.writeErr != nil {
		return m.writeErr
	}
	m.files[path] = append([]byte(nil), data...)
	return nil
}

func userDefinition(t *testing.T) model.Definition {
	t.Helper()
	data, err := model.Build("user", []string{"id:i32", "email:String:pri"})
	require.NoError(t, err)
	return model.NewDefinition(data)
}

const userRust = "struct User {\n    pub id: i32,\n    email: String,\n}\n"

func TestGenerateWrites(t *testing.T) {
	fsys := newMemFS()
	res, err := generation.Generate(fsys, render.Rust, userDefinition(t), generation.Config{Dir: "models"})
	require.NoError(t, err)

	path := filepath.Join("models", "user.rs")
	assert.Equal(t, generation.Result{State: generation.Written, Path: path}, res)
	assert.True(t, fsys.dirs["models"])
	assert.Equal(t, userRust, string(fsys.files[path]))
}

func TestGenerateDefaultDir(t *testing.T) {
	fsys := newMemFS()
	res, err := generation.Generate(fsys, render.Rust, userDefinition(t), generation.Config{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("src", "models", "user.rs"), res.Path)
	assert.True(t, fsys.dirs[generation.DefaultDir])
}

func TestPath(t *testing.T) {
	def := userDefinition(t)
	assert.Equal(t, filepath.Join("models", "user.rs"), generation.Path(def, "models", "rs"))
	assert.Equal(t, filepath.Join("models", "user"), generation.Path(def, "models", ""))
}

func TestGenerateDryRunTouchesNothing(t *testing.T) {
	for _, force := range []bool{false, true} {
		for _, exists := range []bool{false, true} {
			fsys := newMemFS()
			if exists {
				fsys.files[filepath.Join("models", "user.rs")] = []byte("old")
			}
			before := fsys.calls

			res, err := generation.Generate(fsys, render.Rust, userDefinition(t),
				generation.Config{DryRun: true, Force: force, Dir: "models"})
			require.NoError(t, err)
			assert.Equal(t, generation.Skipped, res.State)
			assert.Equal(t, before, fsys.calls)
			assert.Empty(t, fsys.dirs)
		}
	}
}

func TestGenerateBlocked(t *testing.T) {
	fsys := newMemFS()
	path := filepath.Join("models", "user.rs")
	fsys.files[path] = []byte("keep me")

	res, err := generation.Generate(fsys, render.Rust, userDefinition(t), generation.Config{Dir: "models"})

	var ae *generation.AlreadyExistsError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, path, ae.Path)
	assert.Equal(t, generation.Blocked, res.State)
	assert.Equal(t, "keep me", string(fsys.files[path]))
}

func TestGenerateForceOverwrites(t *testing.T) {
	fsys := newMemFS()
	path := filepath.Join("models", "user.rs")
	fsys.files[path] = []byte("a much longer previous content that must disappear entirely")

	res, err := generation.Generate(fsys, render.Rust, userDefinition(t), generation.Config{Dir: "models", Force: true})
	require.NoError(t, err)
	assert.Equal(t, generation.Written, res.State)
	assert.Equal(t, userRust, string(fsys.files[path]))
}

func TestGenerateIOErrors(t *testing.T) {
	boom := errors.New("boom")

	fsys := newMemFS()
	fsys.dirErr = boom
	_, err := generation.Generate(fsys, render.Rust, userDefinition(t), generation.Config{Dir: "models"})
	var ioe *generation.IOError
	require.ErrorAs(t, err, &ioe)
	assert.Equal(t, "models", ioe.Path)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, fsys.files)

	fsys = newMemFS()
	fsys.writeErr = boom
	res, err := generation.Generate(fsys, render.Rust, userDefinition(t), generation.Config{Dir: "models"})
	require.ErrorAs(t, err, &ioe)
	assert.Equal(t, "write", ioe.Op)
	assert.NotEqual(t, generation.Written, res.State)
}

func TestGenerateOS(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "models")
	def := userDefinition(t)

	res, err := generation.Generate(generation.OS, render.Rust, def, generation.Config{Dir: dir})
	require.NoError(t, err)
	b, err := os.ReadFile(res.Path)
	require.NoError(t, err)
	assert.Equal(t, userRust, string(b))

	_, err = generation.Generate(generation.OS, render.Rust, def, generation.Config{Dir: dir})
	var ae *generation.AlreadyExistsError
	require.ErrorAs(t, err, &ae)

	require.NoError(t, os.WriteFile(res.Path, []byte("changed"), 0o644))
	_, err = generation.Generate(generation.OS, render.Rust, def, generation.Config{Dir: dir})
	require.ErrorAs(t, err, &ae)
	b, err = os.ReadFile(res.Path)
	require.NoError(t, err)
	assert.Equal(t, "changed", string(b))

	_, err = generation.Generate(generation.OS, render.Rust, def, generation.Config{Dir: dir, Force: true})
	require.NoError(t, err)
	b, err = os.ReadFile(res.Path)
	require.NoError(t, err)
	assert.Equal(t, userRust, string(b))
}

func TestGenerateOSDryRun(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "models")
	_, err := generation.Generate(generation.OS, render.Rust, userDefinition(t), generation.Config{Dir: dir, DryRun: true})
	require.NoError(t, err)
	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "written", generation.Written.String())
	assert.Equal(t, "blocked", generation.Blocked.String())
	assert.Equal(t, "skipped", generation.Skipped.String())
}
