package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielpatrickdp/quantum-kitty/go-controller/internal/config"
	"github.com/danielpatrickdp/quantum-kitty/go-controller/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hoursCycle 8, energyCycle 16: Coherent, Contemplative, intensity 7.
var fixedNow = time.Unix(8*3600+123, 0).UTC()

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		DBPath:   filepath.Join(t.TempDir(), "qkitty.db"),
		Addr:     "localhost:0",
		LogLevel: "error",
		Persist:  true,
	}
}

// testApp wires a persisted App against a temp database with a frozen clock.
func testApp(t *testing.T, cfg config.Config) *App {
	t.Helper()
	app, closeFn, err := Bootstrap(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { closeFn() })
	app.Now = func() time.Time { return fixedNow }
	return app
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestGreetCmd(t *testing.T) {
	app := testApp(t, testConfig(t))
	out, err := executeCmd(t, app, "greet", "Ada")
	require.NoError(t, err)
	assert.Equal(t, "Hello, Ada! (The quantum kitty is sleeping in this function)\n", out)
}

func TestQuantumGreetCmd(t *testing.T) {
	app := testApp(t, testConfig(t))
	out, err := executeCmd(t, app, "quantum-greet", "Ada")
	require.NoError(t, err)
	assert.Contains(t, out, "I'm contemplating the patterns of our meeting")
	assert.Contains(t, out, "Coherent")
	assert.Contains(t, out, "7/10")
}

func TestWisdomCmd(t *testing.T) {
	app := testApp(t, testConfig(t))
	out, err := executeCmd(t, app, "wisdom", "Mochi")
	require.NoError(t, err)
	assert.Contains(t, out, "Mochi observes your presence with crystalline awareness.")
	assert.Contains(t, out, "Contemplative")
}

func TestWisdomCmd_NeedsSubject(t *testing.T) {
	app := testApp(t, testConfig(t))
	_, err := executeCmd(t, app, "wisdom")
	assert.Error(t, err)
}

func TestWisdomCmd_UsesBondedName(t *testing.T) {
	app := testApp(t, testConfig(t))
	_, err := executeCmd(t, app, "bond", "set", "Mochi", "--identity", "ada")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "wisdom", "--identity", "ada")
	require.NoError(t, err)
	assert.Contains(t, out, "Mochi observes")

	_, err = executeCmd(t, app, "wisdom", "--identity", "nobody")
	assert.Error(t, err)
}

func TestBondGet(t *testing.T) {
	app := testApp(t, testConfig(t))
	out, err := executeCmd(t, app, "bond", "get", "--identity", "ada")
	require.NoError(t, err)
	assert.Contains(t, out, "has not named a kitty yet")

	_, err = executeCmd(t, app, "bond", "set", "Nebula", "--identity", "ada")
	require.NoError(t, err)
	out, err = executeCmd(t, app, "bond", "get", "--identity", "ada")
	require.NoError(t, err)
	assert.Equal(t, "Nebula\n", out)
}

func TestRefreshCmd(t *testing.T) {
	app := testApp(t, testConfig(t))
	out, err := executeCmd(t, app, "refresh")
	require.NoError(t, err)
	assert.Contains(t, out, "Coherent")
	assert.Equal(t, state.Coherent, app.Engine.Current().Condition)
}

func TestTemplateAddAndList(t *testing.T) {
	app := testApp(t, testConfig(t))

	out, err := executeCmd(t, app, "template", "add", "haiku", "{kitty} naps.")
	require.NoError(t, err)
	assert.Contains(t, out, "added template to haiku")

	out, err = executeCmd(t, app, "template", "add", "haiku", "{kitty} naps.")
	require.NoError(t, err)
	assert.Contains(t, out, "already present")

	out, err = executeCmd(t, app, "template", "list", "haiku")
	require.NoError(t, err)
	assert.Contains(t, out, "{kitty} naps.")

	out, err = executeCmd(t, app, "template", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "haiku")
	assert.Contains(t, out, "general")

	out, err = executeCmd(t, app, "template", "list", "nope")
	require.NoError(t, err)
	assert.Contains(t, out, "no templates in nope")
}

func TestAdjectiveAndPhraseAdd(t *testing.T) {
	app := testApp(t, testConfig(t))

	out, err := executeCmd(t, app, "adjective", "add", "Coherent", "lucid")
	require.NoError(t, err)
	assert.Contains(t, out, "added adjective to Coherent")

	out, err = executeCmd(t, app, "phrase", "add", "Playful", "Boop.")
	require.NoError(t, err)
	assert.Contains(t, out, "added phrase to Playful")

	_, err = executeCmd(t, app, "adjective", "add", "Melted", "gooey")
	assert.ErrorContains(t, err, "unknown condition")

	_, err = executeCmd(t, app, "phrase", "add", "grumpy", "Hiss.")
	assert.ErrorContains(t, err, "unknown tone")
}

func TestHistoryCmd(t *testing.T) {
	app := testApp(t, testConfig(t))

	out, err := executeCmd(t, app, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "no refreshes recorded")

	_, err = executeCmd(t, app, "refresh")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "quantum-greet", "Ada")
	require.NoError(t, err)

	out, err = executeCmd(t, app, "history", "--json")
	require.NoError(t, err)
	var records []state.StateRecord
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	// quantum-greet found a fresh vector, so only the forced refresh was recorded.
	require.Len(t, records, 1)
	assert.Equal(t, "refresh", records[0].Trigger)
	assert.Equal(t, 7, records[0].Vector.Intensity)
}

func TestHistoryCmd_RequiresPersistence(t *testing.T) {
	cfg := testConfig(t)
	cfg.Persist = false
	app := testApp(t, cfg)
	_, err := executeCmd(t, app, "history")
	assert.Error(t, err)
}

func TestBootstrap_RestoresAcrossRestart(t *testing.T) {
	cfg := testConfig(t)

	first, closeFn, err := Bootstrap(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	first.Now = func() time.Time { return fixedNow }
	_, err = executeCmd(t, first, "refresh")
	require.NoError(t, err)
	_, err = executeCmd(t, first, "template", "add", "haiku", "{kitty} naps.")
	require.NoError(t, err)
	_, err = executeCmd(t, first, "bond", "set", "Mochi", "--identity", "ada")
	require.NoError(t, err)
	require.NoError(t, closeFn())

	second := testApp(t, cfg)
	cur := second.Engine.Current()
	assert.Equal(t, state.Coherent, cur.Condition)
	assert.True(t, cur.DerivedAt.Equal(fixedNow))
	assert.Contains(t, second.Engine.TemplatesFor("haiku"), "{kitty} naps.")
	assert.NotEmpty(t, second.Engine.TemplatesFor("general"))

	label, found, err := second.Engine.Bond("ada")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Mochi", label)
}

func TestBootstrap_InMemory(t *testing.T) {
	cfg := testConfig(t)
	cfg.Persist = false
	app := testApp(t, cfg)
	assert.Nil(t, app.History)

	out, err := executeCmd(t, app, "wisdom", "Mochi")
	require.NoError(t, err)
	assert.Contains(t, out, "Mochi observes")
}

func TestIntensityBar(t *testing.T) {
	assert.Equal(t, "■■■□□□□□□□ 3/10", intensityBar(3))
	assert.Equal(t, "□□□□□□□□□□ 0/10", intensityBar(-2))
	assert.Equal(t, "■■■■■■■■■■ 10/10", intensityBar(14))
}
