package bind

import (
	"errors"
	"testing"

	"github.com/compound-format/go-compound/tag"
)

func TestWriteThenRead(t *testing.T) {
	root := tag.NewCompound()
	ref := At(root)

	t.Run("int", func(t *testing.T) {
		f := Int(ref)("hp")
		f.Write(19)
		if got := f.MustRead(); got != 19 {
			t.Errorf("Read() = %d, want 19", got)
		}
		if !root.Has("hp") {
			t.Error("write did not reach the compound")
		}
	})
	t.Run("string", func(t *testing.T) {
		f := String(ref)("name")
		f.Write("iris")
		if got := f.MustRead(); got != "iris" {
			t.Errorf("Read() = %q, want iris", got)
		}
	})
	t.Run("double", func(t *testing.T) {
		f := Double(ref)("x")
		f.Write(0.5)
		if got := f.MustRead(); got != 0.5 {
			t.Errorf("Read() = %v, want 0.5", got)
		}
	})
	t.Run("bool", func(t *testing.T) {
		f := Bool(ref)("alive")
		f.Write(true)
		if !f.MustRead() {
			t.Error("Read() = false, want true")
		}
		if root.Get("alive").Type != tag.ByteType {
			t.Error("bool not stored as byte")
		}
	})
}

func TestDefaultProvisioning(t *testing.T) {
	root := tag.NewCompound()
	f := Int(At(root), WithDefault(int32(20)))("health")
	if !root.Has("health") {
		t.Fatal("default not seeded into the compound")
	}
	if got := f.MustRead(); got != 20 {
		t.Errorf("Read() = %d, want default 20", got)
	}
}

func TestDefaultProvisioningExplicitKey(t *testing.T) {
	root := tag.NewCompound()
	// with an explicit key the default lands before the provider runs
	p := Long(At(root), WithKey[int64]("score"), WithDefault(int64(100)))
	if !root.Has("score") {
		t.Fatal("default not seeded at factory time")
	}
	f := p("ignored")
	if f.Key() != "score" {
		t.Errorf("Key() = %q, want score", f.Key())
	}
	if got := f.MustRead(); got != 100 {
		t.Errorf("Read() = %d, want 100", got)
	}
}

func TestNodeSwitchSelfHealing(t *testing.T) {
	a := tag.NewCompound()
	node := a
	f := Int(Var(&node))("mana")
	f.Write(42)

	b := tag.NewCompound()
	node = b
	if got := f.MustRead(); got != 42 {
		t.Errorf("Read() after switch = %d, want 42", got)
	}
	if !b.Has("mana") {
		t.Error("read did not re-seed the fresh compound")
	}
	if got := b.Get("mana").Int; got != 42 {
		t.Errorf("re-seeded value = %d, want 42", got)
	}
}

func TestTypeMismatch(t *testing.T) {
	root := tag.NewCompound()
	root.Put("hp", tag.FromString("twenty"))
	f := Int(At(root))("hp")
	_, err := f.Read()
	if !errors.Is(err, tag.ErrTypeMismatch) {
		t.Errorf("Read() error = %v, want ErrTypeMismatch", err)
	}
}

func TestMissingWithoutDefault(t *testing.T) {
	root := tag.NewCompound()
	f := Int(At(root))("absent")
	_, err := f.Read()
	if !errors.Is(err, ErrMissingValue) {
		t.Errorf("Read() error = %v, want ErrMissingValue", err)
	}
	// the failed read must not invent an entry
	if root.Has("absent") {
		t.Error("failed read created an entry")
	}
}

func TestFrozenVsLive(t *testing.T) {
	a := tag.NewCompound()
	node := a
	live := Var(&node)
	frozen := Freeze(live)

	fLive := Int(live)("v")
	fFrozen := Int(frozen)("v")
	fLive.Write(1) // lands in a, visible to both

	b := tag.NewCompound()
	node = b
	fLive.Write(2)
	fFrozen.Write(3)

	if got := a.Get("v").Int; got != 3 {
		t.Errorf("frozen write went to %d in a, want 3", got)
	}
	if got := b.Get("v").Int; got != 2 {
		t.Errorf("live write went to %d in b, want 2", got)
	}
	if got := fFrozen.MustRead(); got != 3 {
		t.Errorf("frozen Read() = %d, want 3", got)
	}
	if got := fLive.MustRead(); got != 2 {
		t.Errorf("live Read() = %d, want 2", got)
	}
}

func TestExternalMutationWins(t *testing.T) {
	root := tag.NewCompound()
	f := Int(At(root), WithDefault(int32(1)))("v")
	root.Put("v", tag.FromInt(9))
	if got := f.MustRead(); got != 9 {
		t.Errorf("Read() = %d, want externally written 9", got)
	}
}

func TestNestedCompoundBindings(t *testing.T) {
	root := tag.NewCompound()
	sub := Compound(At(root), WithDefault(tag.NewCompound()))("stats")

	stats := sub.MustRead()
	str := Short(At(stats), WithDefault(int16(7)))("strength")
	if got := str.MustRead(); got != 7 {
		t.Errorf("nested Read() = %d, want 7", got)
	}
	// the nested write is visible from the root
	got, err := tag.GetPath(root, "stats.strength")
	if err != nil {
		t.Fatal(err)
	}
	if got.Short != 7 {
		t.Errorf("root sees strength = %d, want 7", got.Short)
	}
}

func TestCompoundFieldTypeMismatch(t *testing.T) {
	root := tag.NewCompound()
	root.Put("stats", tag.FromInt(0))
	f := Compound(At(root))("stats")
	_, err := f.Read()
	if !errors.Is(err, tag.ErrTypeMismatch) {
		t.Errorf("Read() error = %v, want ErrTypeMismatch", err)
	}
}
