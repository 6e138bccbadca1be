package modlog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/embedlog/embedlog/core"
	"github.com/embedlog/embedlog/logger"
	"github.com/embedlog/embedlog/sink"
)

func newModuleLogger(t *testing.T, moduleCount int) (*Logger, *sink.MemSink) {
	t.Helper()
	mem := &sink.MemSink{}
	base, err := logger.New(mem, logger.Config{})
	require.NoError(t, err)
	return New(base, moduleCount), mem
}

func TestNew_TableInitializedToGlobal(t *testing.T) {
	m, _ := newModuleLogger(t, 3)

	assert.Equal(t, 3, m.ModuleCount())
	for i := 0; i < 3; i++ {
		assert.Equal(t, m.Base().Level(), m.Level(i))
	}
}

func TestSetLevel_ClampsToGlobal(t *testing.T) {
	m, _ := newModuleLogger(t, 2)
	m.Base().SetLevel(core.Info)

	// Requests above the global ceiling are clamped, not rejected.
	got := m.SetLevel(0, core.Debug)
	assert.Equal(t, core.Info, got)
	assert.Equal(t, core.Info, m.Level(0))

	got = m.SetLevel(1, core.Error)
	assert.Equal(t, core.Error, got)
}

func TestSetLevel_NotReclampedRetroactively(t *testing.T) {
	m, _ := newModuleLogger(t, 1)

	m.SetLevel(0, core.Debug)
	m.Base().SetLevel(core.Warning)

	// The table entry is independent storage.
	assert.Equal(t, core.Debug, m.Level(0))
}

func TestLog_PerModuleFiltering(t *testing.T) {
	m, mem := newModuleLogger(t, 2)
	m.SetLevel(0, core.Debug)
	m.SetLevel(1, core.Info)

	m.Log(1, core.Debug, "hidden\n")
	m.Log(1, core.Info, "visible\n")
	m.Log(0, core.Debug, "visible2\n")

	require.NoError(t, m.Base().Flush())
	out := mem.String()

	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "<I> visible\n")
	assert.Contains(t, out, "<D> visible2\n")
}

func TestLog_GlobalCeilingStillApplies(t *testing.T) {
	m, mem := newModuleLogger(t, 1)

	m.SetLevel(0, core.Debug)
	m.Base().SetLevel(core.Warning)

	// Module 0 still allows Debug, but the base engine does not.
	m.Debug(0, "filtered by global\n")

	require.NoError(t, m.Base().Flush())
	assert.Empty(t, mem.String())
}

func TestLevelHelpers(t *testing.T) {
	m, mem := newModuleLogger(t, 1)

	m.Critical(0, "c\n")
	m.Error(0, "e\n")
	m.Warning(0, "w\n")
	m.Info(0, "i\n")
	m.Debug(0, "d\n")

	require.NoError(t, m.Base().Flush())
	assert.Equal(t, "<!> c\n<E> e\n<W> w\n<I> i\n<D> d\n", mem.String())
}

func TestLogFromInterrupt_UsesInterruptPath(t *testing.T) {
	m, mem := newModuleLogger(t, 1)
	base := m.Base()

	// Overfill from the interrupt path: no sink write may happen even
	// though auto-flush is enabled on the base engine.
	m.InfoFromInterrupt(0, "%s", strings.Repeat("x", base.StagedCapacity()+8))

	assert.Empty(t, mem.Bytes())
	assert.True(t, base.HasOverrun())
	assert.True(t, base.AutoFlush(), "auto-flush not restored")
}
