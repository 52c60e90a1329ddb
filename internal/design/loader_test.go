package design

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTheme(t *testing.T) {
	sys, err := Load(`
@import "tailwindcss";

@theme {
	--spacing: 0.25rem;
	--color-red-500: #ef4444;
	--color-red-600: #dc2626;
	--radius-sm: 0.25rem;
	--font-display: "Inter", sans-serif;
}
`, ".")
	require.NoError(t, err)

	assert.Equal(t, Length{Value: 0.25, Unit: "rem"}, sys.Spacing)
	assert.Equal(t, "#ef4444", sys.Colors["red-500"])
	assert.Equal(t, "#dc2626", sys.Colors["red-600"])
	assert.Equal(t, Length{Value: 0.25, Unit: "rem"}, sys.Radii["sm"])
	// Non-theme namespaces are ignored.
	assert.NotContains(t, sys.Colors, "font-display")
}

func TestLoadSpacingInPixels(t *testing.T) {
	sys, err := Load(`@theme { --spacing: 4px; }`, ".")
	require.NoError(t, err)
	assert.Equal(t, Length{Value: 4, Unit: "px"}, sys.Spacing)

	// 4px base with the default 16px root: 16px is 4 steps.
	assert.Equal(t, "p-4", sys.CanonicalizeClass("p-[16px]", Options{}))
}

func TestLoadDefaultSpacing(t *testing.T) {
	sys, err := Load(`@theme { --color-white: #fff; }`, ".")
	require.NoError(t, err)
	assert.Equal(t, DefaultSpacing, sys.Spacing)
}

func TestLoadRootFallback(t *testing.T) {
	// No @theme block: :root custom properties define the theme.
	sys, err := Load(`
:root {
	--spacing: 0.5rem;
	--color-ink: #111111;
}
`, ".")
	require.NoError(t, err)

	assert.Equal(t, Length{Value: 0.5, Unit: "rem"}, sys.Spacing)
	assert.Equal(t, "#111111", sys.Colors["ink"])
}

func TestLoadThemeWinsOverRoot(t *testing.T) {
	sys, err := Load(`
:root { --spacing: 1rem; }
@theme { --spacing: 0.25rem; }
`, ".")
	require.NoError(t, err)
	assert.Equal(t, Length{Value: 0.25, Unit: "rem"}, sys.Spacing)
}

func TestLoadSemicolonFreeFinalDeclaration(t *testing.T) {
	// The last declaration of a block may omit its semicolon. The block must
	// still close there, so later :root variables stay fallback-only.
	sys, err := Load(`
@theme { --spacing: 0.25rem }

:root {
	--color-outside: #123456;
}
`, ".")
	require.NoError(t, err)

	assert.Equal(t, Length{Value: 0.25, Unit: "rem"}, sys.Spacing)
	assert.NotContains(t, sys.Colors, "outside")
}

func TestLoadInvalidSpacing(t *testing.T) {
	_, err := Load(`@theme { --spacing: banana; }`, ".")
	require.Error(t, err)

	_, err = Load(`@theme { --spacing: 0rem; }`, ".")
	require.Error(t, err)
}

func TestLoadDuplicateColorValue(t *testing.T) {
	sys, err := Load(`
@theme {
	--color-zinc-950: #09090b;
	--color-ink: #09090b;
}
`, ".")
	require.NoError(t, err)

	// First name in sorted order claims the shared value.
	got := sys.CanonicalizeClass("bg-[#09090b]", Options{})
	assert.Equal(t, "bg-ink", got)
}

func TestLoadFileResolvesImports(t *testing.T) {
	dir := t.TempDir()

	theme := filepath.Join(dir, "theme.css")
	require.NoError(t, os.WriteFile(theme, []byte(`
@theme {
	--spacing: 0.25rem;
	--color-red-500: #ef4444;
}
`), 0644))

	main := filepath.Join(dir, "app.css")
	require.NoError(t, os.WriteFile(main, []byte(`
@import "theme.css";

body { margin: 0; }
`), 0644))

	sys, err := LoadFile(main)
	require.NoError(t, err)
	assert.Equal(t, "#ef4444", sys.Colors["red-500"])
}

func TestLoadFileMissingImport(t *testing.T) {
	dir := t.TempDir()
	main := filepath.Join(dir, "app.css")
	require.NoError(t, os.WriteFile(main, []byte(`@import "missing.css";`), 0644))

	_, err := LoadFile(main)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.css")
}

func TestLoadFileImportCycle(t *testing.T) {
	dir := t.TempDir()

	a := filepath.Join(dir, "a.css")
	b := filepath.Join(dir, "b.css")
	require.NoError(t, os.WriteFile(a, []byte(`
@import "b.css";
@theme { --color-one: #111; }
`), 0644))
	require.NoError(t, os.WriteFile(b, []byte(`
@import "a.css";
@theme { --color-two: #222; }
`), 0644))

	sys, err := LoadFile(a)
	require.NoError(t, err)
	assert.Contains(t, sys.Colors, "one")
	assert.Contains(t, sys.Colors, "two")
}

func TestLoadFileNotFound(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.css"))
	require.Error(t, err)
}

func TestDescribe(t *testing.T) {
	sys := testSystem(t)
	d := sys.Describe()

	assert.Equal(t, Length{Value: 0.25, Unit: "rem"}, d.Spacing)

	names := make([]string, 0, len(d.Colors))
	for _, c := range d.Colors {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"brand", "red-500", "white"}, names)

	require.Len(t, d.Radii, 2)
	assert.Equal(t, ThemeEntry{Name: "lg", Value: "0.5rem"}, d.Radii[0])
	assert.Equal(t, ThemeEntry{Name: "sm", Value: "0.25rem"}, d.Radii[1])
}
