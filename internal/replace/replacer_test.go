package replace

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/camswap/internal/config"
	"github.com/backmassage/camswap/internal/logging"
	"github.com/backmassage/camswap/internal/nodegraph"
	"github.com/backmassage/camswap/internal/resolve"
	"github.com/backmassage/camswap/internal/session"
	"github.com/backmassage/camswap/internal/shot"
)

const comp = `
nodes:
  - {name: BD1, class: BackdropNode, x: 1000, y: 0, width: 400, height: 400}
  - {name: Read1, class: Read, x: 1010, y: 10, knobs: {file: "P:/shows/Suntop/02_production/ep01/sq010/sq010_sh020/comp/plate.####.exr"}}
  - {name: Camera1, class: Camera, x: 1100, y: 100}
  - {name: Camera2, class: Camera, x: 1200, y: 100}
  - {name: Render1, class: ScanlineRender, x: 1100, y: 300, inputs: [Read1, "", Camera1]}
  - {name: Render2, class: ScanlineRender, x: 1200, y: 300, inputs: [Read1, "", Camera2]}
  - {name: BD2, class: BackdropNode, x: 2000, y: 0, width: 400, height: 400}
  - {name: Read2, class: Read, x: 2010, y: 10, knobs: {file: "P:/shows/Suntop/02_production/ep01/sq010/sq010_sh030/comp/plate.####.exr"}}
  - {name: Camera3, class: Camera, x: 2100, y: 100}
  - {name: BD3, class: BackdropNode, x: 3000, y: 0, width: 400, height: 400}
  - {name: Read3, class: Read, x: 3010, y: 10, knobs: {file: "/tmp/scratch/plate.exr"}}
  - {name: Camera4, class: Camera, x: 3100, y: 100}
  - {name: BD4, class: BackdropNode, x: 4000, y: 0, width: 400, height: 400}
  - {name: Read4, class: Read, x: 4010, y: 10, knobs: {file: "P:/shows/Suntop/02_production/ep01/sq020/sq020_sh010/comp/plate.####.exr"}}
  - {name: Loose, class: Grade, x: 9000, y: 9000}
`

const export = `
nodes:
  - {name: Axis1, class: Axis}
  - {name: Camera1, class: Camera, inputs: [Axis1]}
`

// fakeResolver answers by shot token and records every query.
type fakeResolver struct {
	paths map[string][]string
	calls []shot.Identity
}

func (f *fakeResolver) Resolve(id shot.Identity) ([]string, string) {
	f.calls = append(f.calls, id)
	hits := f.paths[id.Shot.Text]
	if len(hits) == 0 {
		return nil, ""
	}
	return hits, "exact"
}

// fakePrompter picks a fixed index; a negative index cancels.
type fakePrompter struct {
	pick       int
	offered    [][]string
	unresolved []shot.Identity
}

func (f *fakePrompter) Disambiguate(paths []string, _ shot.Identity) (string, bool) {
	f.offered = append(f.offered, paths)
	if f.pick < 0 || f.pick >= len(paths) {
		return "", false
	}
	return paths[f.pick], true
}

func (f *fakePrompter) NotifyUnresolved(id shot.Identity) {
	f.unresolved = append(f.unresolved, id)
}

func newComp(t *testing.T) *session.Session {
	t.Helper()
	sc, err := session.ParseScript([]byte(comp))
	require.NoError(t, err)
	s, err := session.FromScript(sc)
	require.NoError(t, err)
	return s
}

func writeExport(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func quiet() *logging.Logger { return logging.New(io.Discard, true) }

func nodes(s *session.Session, names ...string) []nodegraph.Node {
	out := make([]nodegraph.Node, 0, len(names))
	for _, n := range names {
		out = append(out, s.Node(n))
	}
	return out
}

func selectedNames(s *session.Session) []string {
	var out []string
	for _, n := range s.Selected() {
		out = append(out, n.Name())
	}
	sort.Strings(out)
	return out
}

func TestRun_EmptyInput(t *testing.T) {
	s := newComp(t)
	res := &fakeResolver{}
	r := New(s, res, &fakePrompter{}, quiet())

	results, stats := r.Run(context.Background(), []nodegraph.Node{})
	assert.Empty(t, results)
	assert.Equal(t, Stats{}, stats)
	assert.Empty(t, res.calls)
}

func TestRun_CamerasShareResolvedPath(t *testing.T) {
	s := newComp(t)
	path := writeExport(t, t.TempDir(), "sq010_sh020_cam.nk", export)
	res := &fakeResolver{paths: map[string][]string{"sh020": {path}}}
	prompt := &fakePrompter{}

	results, stats := New(s, res, prompt, quiet()).Run(context.Background(), nodes(s, "Read1"))

	require.Len(t, results, 2)
	bd := s.Node("BD1")
	for _, r := range results {
		assert.Equal(t, path, r.Path)
		assert.Equal(t, bd, r.Container)
		assert.Equal(t, nodegraph.ClassCamera, r.Camera.Class())
		assert.True(t, s.Exists(r.Camera))
		assert.Equal(t, bd, s.Backdrop(r.Camera), "new camera sits where the old one was")
	}
	assert.Equal(t, results[0].Camera, s.Node("Render1").Input(2))
	assert.Equal(t, results[1].Camera, s.Node("Render2").Input(2))

	assert.Equal(t, 1, stats.Containers)
	assert.Equal(t, 2, stats.Replaced)
	assert.Empty(t, prompt.offered, "single candidate needs no prompt")
	require.Len(t, res.calls, 1)
	assert.Equal(t, "Suntop/ep01/sq010/sh020", res.calls[0].String())
}

func TestRun_Disambiguation(t *testing.T) {
	dir := t.TempDir()
	candidates := []string{
		writeExport(t, dir, "a.nk", export),
		writeExport(t, dir, "b.nk", export),
		writeExport(t, dir, "c.nk", export),
	}

	t.Run("chosen candidate used", func(t *testing.T) {
		s := newComp(t)
		prompt := &fakePrompter{pick: 1}
		res := &fakeResolver{paths: map[string][]string{"sh030": candidates}}

		results, stats := New(s, res, prompt, quiet()).Run(context.Background(), nodes(s, "Camera3"))

		require.Len(t, prompt.offered, 1)
		assert.Equal(t, candidates, prompt.offered[0])
		require.Len(t, results, 1)
		assert.Equal(t, candidates[1], results[0].Path)
		assert.Equal(t, 1, stats.Replaced)
		assert.Nil(t, s.Node("Camera3"), "placeholder deleted")
	})

	t.Run("cancel skips container", func(t *testing.T) {
		s := newComp(t)
		prompt := &fakePrompter{pick: -1}
		res := &fakeResolver{paths: map[string][]string{"sh030": candidates}}

		results, stats := New(s, res, prompt, quiet()).Run(context.Background(), nodes(s, "Camera3"))

		assert.Empty(t, results)
		assert.Equal(t, 1, stats.Cancelled)
		assert.NotNil(t, s.Node("Camera3"), "graph untouched")
	})
}

func TestRun_UnresolvedNotifies(t *testing.T) {
	s := newComp(t)
	prompt := &fakePrompter{}

	results, stats := New(s, &fakeResolver{}, prompt, quiet()).Run(context.Background(), nodes(s, "Read1"))

	assert.Empty(t, results)
	assert.Equal(t, 1, stats.Unresolved)
	require.Len(t, prompt.unresolved, 1)
	assert.Equal(t, "sh020", prompt.unresolved[0].Shot.Text)
	assert.NotNil(t, s.Node("Camera1"))
}

func TestRun_FaultIsolation(t *testing.T) {
	s := newComp(t)
	path := writeExport(t, t.TempDir(), "sh030.nk", export)
	res := &fakeResolver{paths: map[string][]string{"sh030": {path}}}

	in := nodes(s, "Read1", "Camera1", "Read2", "Read3", "Loose")
	results, stats := New(s, res, &fakePrompter{}, quiet()).Run(context.Background(), in)

	require.Len(t, results, 1)
	assert.Equal(t, s.Node("BD2"), results[0].Container)
	assert.Equal(t, Stats{Containers: 3, Unidentified: 1, Unresolved: 1, Replaced: 1}, stats)
	assert.NotNil(t, s.Node("Camera4"), "unidentified container untouched")
}

func TestRun_NoCameras(t *testing.T) {
	s := newComp(t)
	res := &fakeResolver{}

	_, stats := New(s, res, &fakePrompter{}, quiet()).Run(context.Background(), nodes(s, "Read4"))

	assert.Equal(t, 1, stats.NoCameras)
	assert.Empty(t, res.calls, "resolution skipped without cameras")
}

func TestRun_SpliceFailureContained(t *testing.T) {
	s := newComp(t)
	dir := t.TempDir()
	bad := writeExport(t, dir, "bad.nk", "nodes:\n  - {name: Axis1, class: Axis}\n")
	good := writeExport(t, dir, "good.nk", export)
	res := &fakeResolver{paths: map[string][]string{"sh020": {bad}, "sh030": {good}}}

	results, stats := New(s, res, &fakePrompter{}, quiet()).Run(context.Background(), nodes(s, "Read1", "Read2"))

	require.Len(t, results, 1)
	assert.Equal(t, good, results[0].Path)
	assert.Equal(t, 2, stats.Failed)
	assert.Equal(t, 1, stats.Replaced)
	assert.NotNil(t, s.Node("Camera1"))
	assert.NotNil(t, s.Node("Camera2"))
}

func TestRun_SelectionGuard(t *testing.T) {
	s := newComp(t)
	path := writeExport(t, t.TempDir(), "sh020.nk", export)
	res := &fakeResolver{paths: map[string][]string{"sh020": {path}}}

	s.Node("Camera1").SetSelected(true)
	s.Node("Loose").SetSelected(true)

	results, _ := New(s, res, &fakePrompter{}, quiet()).Run(context.Background(), nil)
	require.Len(t, results, 2)

	want := []string{"Loose", results[0].Camera.Name(), results[1].Camera.Name()}
	sort.Strings(want)
	assert.Equal(t, want, selectedNames(s), "surviving selection plus new cameras")
}

func TestRun_Override(t *testing.T) {
	s := newComp(t)
	path := writeExport(t, t.TempDir(), "fixed.nk", export)
	res := &fakeResolver{}

	results, stats := New(s, res, &fakePrompter{}, quiet(), WithOverride(path)).
		Run(context.Background(), nodes(s, "Read1", "Read2"))

	assert.Len(t, results, 3)
	assert.Equal(t, 3, stats.Replaced)
	assert.Empty(t, res.calls)
	for _, r := range results {
		assert.Equal(t, path, r.Path)
	}
}

func TestRun_ContextCancelled(t *testing.T) {
	s := newComp(t)
	path := writeExport(t, t.TempDir(), "sh020.nk", export)
	res := &fakeResolver{paths: map[string][]string{"sh020": {path}}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, stats := New(s, res, &fakePrompter{}, quiet()).Run(ctx, nodes(s, "Read1"))
	assert.Empty(t, results)
	assert.Equal(t, 1, stats.Containers)
	assert.Empty(t, res.calls)
}

func TestRun_WithResolver(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "SUNTOP", "02_production", "ep01", "SEQUENCES", "sq010", "SHOTS", "sq010_sh030", "animation", "camera")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := writeExport(t, dir, "sq010_sh030_cam.nk", export)

	cfg := config.DefaultConfig()
	cfg.Roots = []string{root}
	s := newComp(t)

	results, _ := New(s, resolve.New(&cfg, nil), &fakePrompter{}, quiet()).
		Run(context.Background(), nodes(s, "Camera3"))

	require.Len(t, results, 1)
	assert.Equal(t, path, results[0].Path)
}

func TestIdentifyShot(t *testing.T) {
	sc, err := session.ParseScript([]byte(`
nodes:
  - {name: BD, class: BackdropNode, x: 0, y: 0, width: 500, height: 500}
  - {name: Stray, class: Read, x: 10, y: 10, knobs: {file: "/tmp/sh999/ref.mov"}}
  - {name: Empty, class: Read, x: 20, y: 10, knobs: {file: "  "}}
  - {name: Plate, class: Read, x: 30, y: 10, knobs: {file: "P:/shows/Kite/02_production/ep03/sq001/sq001_sh010/char_beauty.exr"}}
  - {name: Grade, class: Grade, x: 40, y: 10, knobs: {file: "P:/shows/Other/02_production/ep09/sq009/sq009_sh009/x.exr"}}
`))
	require.NoError(t, err)
	s, err := session.FromScript(sc)
	require.NoError(t, err)

	bd := s.Node("BD")
	assert.Equal(t, []string{"/tmp/sh999/ref.mov", "P:/shows/Kite/02_production/ep03/sq001/sq001_sh010/char_beauty.exr"},
		ReadPaths(s, bd))

	id, ok := IdentifyShot(s, bd)
	require.True(t, ok)
	assert.Equal(t, "Kite/ep03/sq001/sh010", id.String())

	_, ok = IdentifyShot(s, s.Node("Grade"))
	assert.False(t, ok, "non-backdrop has no members")
}

func TestGroupByContainer(t *testing.T) {
	s := newComp(t)
	got := GroupByContainer(s, nodes(s, "Camera3", "Loose", "Read1", "Read2", "Camera1", "BD1"))

	var names []string
	for _, bd := range got {
		names = append(names, bd.Name())
	}
	assert.Equal(t, []string{"BD2", "BD1"}, names)
}
