package dynasm

import (
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/dynasm/internal/mmap"
)

// testReloc is a little-endian field ending at the anchor.
type testReloc struct {
	size int
	kind RelocationKind
}

func (r testReloc) Size() int                      { return r.size }
func (r testReloc) FieldOffset() int               { return r.size }
func (r testReloc) StartOffset() int               { return 0 }
func (r testReloc) Kind() RelocationKind           { return r.kind }
func (r testReloc) Write(buf []byte, v int64) error { return WriteSigned(buf, v) }
func (r testReloc) Read(buf []byte) int64          { return ReadSigned(buf) }
func (r testReloc) Encode() []byte                 { return []byte{byte(r.size), byte(r.kind)} }

var (
	rel8   = testReloc{size: 1}
	rel32  = testReloc{size: 4}
	abs64  = testReloc{size: 8, kind: AbsToRel}
	extRel = testReloc{size: 4, kind: RelToAbs}
)

func finalize(t *testing.T, a *Assembler) []byte {
	t.Helper()
	buf, err := a.Finalize()
	require.NoError(t, err)
	t.Cleanup(func() { buf.Close() })
	return append([]byte(nil), buf.Bytes()...)
}

func TestLocalLabels(t *testing.T) {
	a := New(nil, nil)
	require.NoError(t, a.Extend([]byte{0xaa, 0xaa, 0xaa, 0xaa}))
	require.NoError(t, a.LocalLabel("l"))

	// backward references are patched immediately
	require.NoError(t, a.PushU32(0))
	require.NoError(t, a.BackwardReloc("l", 0, rel32))

	// forward references wait for the next definition
	require.NoError(t, a.PushByte(0))
	require.NoError(t, a.ForwardReloc("l", 0, rel8))
	require.NoError(t, a.PushU16(0xbbbb))
	require.NoError(t, a.LocalLabel("l"))

	// backward references see the latest definition
	require.NoError(t, a.PushByte(0))
	require.NoError(t, a.BackwardReloc("l", 1, rel8))

	off, ok := a.LabelOffset(Backward("l"))
	require.True(t, ok)
	require.Equal(t, AssemblyOffset(11), off)
	_, ok = a.LabelOffset(Forward("l"))
	require.False(t, ok)

	want := []byte{
		0xaa, 0xaa, 0xaa, 0xaa,
		0xfc, 0xff, 0xff, 0xff, // 4 - 8
		0x02,       // 11 - 9
		0xbb, 0xbb, //
		0x00, // 11 + 1 - 12
	}
	if diff := cmp.Diff(want, finalize(t, a)); diff != "" {
		t.Fatalf("code mismatch (-want +got):\n%s", diff)
	}
}

func TestLabelErrors(t *testing.T) {
	a := New(nil, nil)
	defer a.Close()

	require.NoError(t, a.GlobalLabel("g"))
	var dup *DuplicateLabelError
	require.ErrorAs(t, a.GlobalLabel("g"), &dup)
	require.Equal(t, KindGlobal, dup.Kind)

	var unknown *UnknownLabelError
	require.ErrorAs(t, a.DynamicLabel(DynamicLabel(3)), &unknown)
	require.Equal(t, KindDynamic, unknown.Kind)

	id := a.NewDynamicLabel()
	require.NoError(t, a.DynamicLabel(id))
	require.ErrorAs(t, a.DynamicLabel(id), &dup)
	require.Equal(t, id, dup.ID)

	// backward references need a definition
	require.NoError(t, a.PushU32(0))
	require.ErrorAs(t, a.BackwardReloc("nope", 0, rel32), &unknown)
	require.Equal(t, "nope", unknown.Name)

	require.Error(t, a.Append(nil, Ref{Rel: rel32}))

	// the field must lie in uncommitted code
	b := New(nil, nil)
	defer b.Close()
	require.NoError(t, b.PushByte(0))
	require.ErrorIs(t, b.Append([]byte{0}, Ref{Target: Global("g"), Rel: rel32}), ErrOutOfBounds)
	require.Equal(t, AssemblyOffset(1), b.Offset())
}

func TestLocalLabelImpossible(t *testing.T) {
	a := New(nil, nil)
	defer a.Close()
	require.NoError(t, a.PushByte(0))
	require.NoError(t, a.ForwardReloc("far", 0, rel8))
	require.NoError(t, a.PushByte(0))
	require.NoError(t, a.ForwardReloc("far", 0, rel8))
	require.NoError(t, a.Extend(make([]byte, 200)))

	err := a.LocalLabel("far")
	require.ErrorIs(t, err, ErrImpossibleRelocation)
	_, ok := a.LabelOffset(Backward("far"))
	require.False(t, ok)
}

func TestCommit(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	a := New(nil, NewConfig().WithLogger(logger))
	defer a.Close()

	require.NoError(t, a.PushU32(0))
	require.NoError(t, a.GlobalReloc("end", 0, rel32))
	id := a.NewDynamicLabel()
	require.NoError(t, a.PushU32(0))
	require.NoError(t, a.DynamicReloc(id, 0, rel32))
	require.NoError(t, a.PushByte(0))
	require.NoError(t, a.ForwardReloc("f", 0, rel8))

	// nothing is committed while any reference is unresolved
	err := a.Commit()
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown global label "end"`)
	require.Contains(t, err.Error(), "unknown dynamic label 0")
	require.Contains(t, err.Error(), `unknown local label "f"`)
	require.Equal(t, 0, a.mem.committed())
	require.Equal(t, AssemblyOffset(9), a.Offset())

	require.NoError(t, a.LocalLabel("f"))
	require.NoError(t, a.DynamicLabel(id))
	require.NoError(t, a.GlobalLabel("end"))
	require.NoError(t, a.Commit())
	require.Equal(t, 9, a.mem.committed())

	g, err := a.Reader().Lock()
	require.NoError(t, err)
	require.Equal(t, []byte{5, 0, 0, 0, 1, 0, 0, 0, 0}, g.Bytes())
	g.Unlock()
	g.Unlock()

	var committed bool
	for _, e := range hook.AllEntries() {
		if e.Message == "Committed code" {
			committed = true
			require.Equal(t, 9, e.Data["size"])
		}
	}
	require.True(t, committed)
}

func TestGrowRelocates(t *testing.T) {
	var moves [][2]uintptr
	cfg := NewConfig().WithInitialCapacity(1).WithRelocateHook(func(oldBase, newBase uintptr) {
		moves = append(moves, [2]uintptr{oldBase, newBase})
	})
	a := New(nil, cfg)

	require.NoError(t, a.GlobalLabel("start"))
	require.NoError(t, a.PushU64(0))
	require.NoError(t, a.GlobalReloc("start", 16, abs64))
	require.NoError(t, a.Commit())

	g, err := a.Reader().Lock()
	require.NoError(t, err)
	base := g.Ptr(0)
	require.Equal(t, uint64(base+16), binary.LittleEndian.Uint64(g.Bytes()))
	g.Unlock()

	// outgrow the first page
	require.NoError(t, a.Extend(make([]byte, 4*mmap.PageSize)))
	require.NoError(t, a.Commit())
	require.Len(t, moves, 1)
	require.Equal(t, base, moves[0][0])

	code := finalize(t, a)
	require.Len(t, code, 8+4*mmap.PageSize)
	require.Equal(t, uint64(moves[0][1]+16), binary.LittleEndian.Uint64(code))
}

func TestFinalize(t *testing.T) {
	a := New(nil, nil)
	require.NoError(t, a.Extend([]byte{1, 2, 3}))
	require.NoError(t, a.Align(8, 0xcc))
	buf, err := a.Finalize()
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc}, buf.Bytes())
	require.NotZero(t, buf.Ptr(0))
	require.Zero(t, buf.Ptr(9))

	require.ErrorIs(t, a.PushByte(0), ErrFinalized)
	require.ErrorIs(t, a.GlobalLabel("x"), ErrFinalized)
	require.NoError(t, a.Close())

	g, err := a.Reader().Lock()
	require.NoError(t, err)
	require.NoError(t, buf.Close())
	// the guard keeps the region mapped
	require.Equal(t, byte(1), g.Bytes()[0])
	g.Unlock()

	_, err = a.Reader().Lock()
	require.ErrorIs(t, err, ErrReleased)
}

func TestAlter(t *testing.T) {
	a := New(nil, nil)
	defer a.Close()
	require.NoError(t, a.GlobalLabel("start"))
	require.NoError(t, a.Extend(make([]byte, 16)))
	require.NoError(t, a.Commit())

	var saved *Modifier
	err := a.Alter(func(m *Modifier) error {
		saved = m
		require.NoError(t, m.Goto(4))
		require.NoError(t, m.Extend([]byte{0xde, 0xad}))
		require.NoError(t, m.CheckExact(6))
		require.Error(t, m.Check(5))
		require.NoError(t, m.Extend([]byte{0xbe, 0xef}))
		require.NoError(t, m.Goto(8))
		require.NoError(t, m.Append([]byte{0}, Ref{Target: Global("start"), Rel: rel8}))
		require.ErrorIs(t, m.Goto(17), ErrOutOfBounds)
		return m.Extend(make([]byte, 8))
	})
	require.ErrorIs(t, err, ErrOutOfBounds)
	require.ErrorIs(t, saved.PushByte(0), errModifierDone)

	g, err := a.Reader().Lock()
	require.NoError(t, err)
	defer g.Unlock()
	require.Equal(t, []byte{0, 0, 0, 0, 0xde, 0xad, 0xbe, 0xef, 0xf7, 0, 0, 0, 0, 0, 0, 0}, g.Bytes())
}

func TestAlterUncommitted(t *testing.T) {
	a := New(nil, nil)
	require.NoError(t, a.Extend([]byte{1, 2}))
	require.NoError(t, a.Commit())
	require.NoError(t, a.Extend([]byte{3, 4, 5}))

	require.NoError(t, a.AlterUncommitted(func(m *UncommittedModifier) error {
		require.Equal(t, AssemblyOffset(2), m.Offset())
		require.ErrorIs(t, m.Goto(1), ErrOutOfBounds)
		require.NoError(t, m.Goto(3))
		require.NoError(t, m.PushByte(0x44))
		require.NoError(t, m.CheckExact(4))
		require.Error(t, m.Append([]byte{0}, Ref{Target: Global("x"), Rel: rel8}))
		return m.Extend([]byte{0x55})
	}))
	require.Equal(t, []byte{1, 2, 3, 0x44, 0x55}, finalize(t, a))
}

func TestRelocationHelpers(t *testing.T) {
	for size, code := range map[int]uint8{1: 0, 2: 1, 4: 2, 8: 3} {
		c, ok := SizeCode(size)
		require.True(t, ok)
		require.Equal(t, code, c)
		require.Equal(t, size, SizeFromCode(c))
	}
	_, ok := SizeCode(3)
	require.False(t, ok)

	buf := make([]byte, 2)
	require.NoError(t, WriteSigned(buf, -300))
	require.Equal(t, int64(-300), ReadSigned(buf))
	require.ErrorIs(t, WriteSigned(buf, 1<<15), ErrImpossibleRelocation)
	require.ErrorIs(t, WriteSigned(make([]byte, 3), 0), ErrImpossibleRelocation)

	require.True(t, FitsSigned(-128, 8))
	require.False(t, FitsSigned(128, 8))
	require.True(t, FitsSigned(-1<<63, 64))
	require.True(t, FitsUnsigned(255, 8))
	require.False(t, FitsUnsigned(256, 8))
	require.False(t, FitsUnsigned(-1, 8))
}

func TestReferenceValues(t *testing.T) {
	local := reference{anchor: 12, target: Global("g"), rel: rel32, resolved: true, offset: 4}
	require.False(t, local.baseDependent())
	require.Equal(t, int64(-8), local.value(0x1000))

	abs := reference{anchor: 8, target: Global("g"), addend: 2, rel: abs64, resolved: true, offset: 4}
	require.True(t, abs.baseDependent())
	require.Equal(t, int64(0x1006), abs.value(0x1000))

	ext := reference{anchor: 8, target: Extern(0x5000), rel: extRel}
	require.True(t, ext.baseDependent())
	require.Equal(t, int64(0x5000-0x1008), ext.value(0x1000))

	extAbs := reference{anchor: 8, target: Extern(0x5000), rel: abs64}
	require.False(t, extAbs.baseDependent())
	require.Equal(t, int64(0x5000), extAbs.value(0x1000))
}

func TestTargets(t *testing.T) {
	require.Equal(t, "->g", Global("g").String())
	require.Equal(t, ">l", Forward("l").String())
	require.Equal(t, "<l", Backward("l").String())
	require.Equal(t, "=>7", DynamicLabel(7).Target().String())
	require.Equal(t, KindExtern, Extern(1).Kind())
	require.Equal(t, KindLocal, Forward("l").Kind())
	require.False(t, Target{}.IsValid())
	require.Equal(t, "aarch64", ArchAArch64.String())
	require.Equal(t, byte(0x90), ArchX64.AlignFill())
	require.Equal(t, byte(0), ArchRISCV64.AlignFill())
}
