package wordlist

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexander-akhmetov/signdeck/internal/domain"
	"github.com/alexander-akhmetov/signdeck/internal/event"
	"github.com/alexander-akhmetov/signdeck/internal/rng"
	"github.com/alexander-akhmetov/signdeck/internal/storage"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

type testEnv struct {
	store  *Store
	slot   *storage.MemorySlot
	events []event.Event
}

func newTestStore(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{slot: storage.NewMemorySlot()}
	n := 0
	store, err := Open(context.Background(), env.slot,
		WithRand(rng.NewSequence(2, 5)),
		WithClock(func() time.Time { return fixedNow }),
		WithIDFunc(func() string { n++; return fmt.Sprintf("id-%d", n) }),
		WithNotifier(func(e event.Event) { env.events = append(env.events, e) }),
	)
	require.NoError(t, err)
	env.store = store
	return env
}

func TestCreate(t *testing.T) {
	env := newTestStore(t)

	l, err := env.store.Create(context.Background(), "Animaux", "chat\n\nchien \n")
	require.NoError(t, err)

	assert.Equal(t, "id-1", l.ID)
	assert.Equal(t, "Animaux", l.Name)
	assert.Equal(t, []string{"chat", "chien"}, l.Words)
	assert.Equal(t, domain.ColorPurple, l.Color) // Palette[2]
	assert.Equal(t, fixedNow, l.CreatedAt)

	assert.Equal(t, 1, env.slot.Saves())
	require.Len(t, env.events, 1)
	assert.Equal(t, event.Success(`List "Animaux" created with 2 words`), env.events[0])
}

func TestCreate_WordsMatchTrimmedLines(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"a", []string{"a"}},
		{"  a  \n b", []string{"a", "b"}},
		{"\n\nx\n\n\ny\n", []string{"x", "y"}},
		{"z\ny\nx", []string{"z", "y", "x"}},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("%q", tc.raw), func(t *testing.T) {
			env := newTestStore(t)
			l, err := env.store.Create(context.Background(), "L", tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, l.Words)
		})
	}
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name      string
		listName  string
		raw       string
		wantField string
		wantMsg   string
	}{
		{name: "blank name", listName: "  ", raw: "chat", wantField: "name", wantMsg: "Please fill in all fields"},
		{name: "empty words", listName: "Animaux", raw: "", wantField: "words", wantMsg: "Please fill in all fields"},
		{name: "only blank lines", listName: "Animaux", raw: "\n  \n\t\n", wantField: "words", wantMsg: "Please fill in all fields"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestStore(t)

			_, err := env.store.Create(context.Background(), tc.listName, tc.raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation))

			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.wantField, ve.Field)
			assert.Equal(t, tc.wantMsg, ve.Message)

			assert.Zero(t, env.store.Len(), "store must not change")
			assert.Zero(t, env.slot.Saves(), "nothing must be written")
			require.Len(t, env.events, 1)
			assert.Equal(t, event.KindError, env.events[0].Kind)
		})
	}
}

func TestCreate_UniqueIDs(t *testing.T) {
	slot := storage.NewMemorySlot()
	ids := []string{"dup", "dup", "dup", "other"}
	i := 0
	store, err := Open(context.Background(), slot, WithIDFunc(func() string {
		id := ids[i]
		i++
		return id
	}))
	require.NoError(t, err)

	a, err := store.Create(context.Background(), "A", "x")
	require.NoError(t, err)
	b, err := store.Create(context.Background(), "B", "y")
	require.NoError(t, err)

	assert.Equal(t, "dup", a.ID)
	assert.Equal(t, "other", b.ID)
}

func TestCreate_DefaultIDsAreUUIDs(t *testing.T) {
	store, err := Open(context.Background(), storage.NewMemorySlot())
	require.NoError(t, err)

	a, err := store.Create(context.Background(), "A", "x")
	require.NoError(t, err)
	b, err := store.Create(context.Background(), "B", "x")
	require.NoError(t, err)

	assert.Len(t, a.ID, 36)
	assert.NotEqual(t, a.ID, b.ID)
	assert.True(t, a.Color.Valid())
}

func TestListInsertionOrder(t *testing.T) {
	env := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"C", "A", "B"} {
		_, err := env.store.Create(ctx, name, "w")
		require.NoError(t, err)
	}

	var names []string
	for _, l := range env.store.List() {
		names = append(names, l.Name)
	}
	assert.Equal(t, []string{"C", "A", "B"}, names)
}

func TestList_ReturnsCopies(t *testing.T) {
	env := newTestStore(t)
	l, err := env.store.Create(context.Background(), "A", "x\ny")
	require.NoError(t, err)

	lists := env.store.List()
	lists[0].Words[0] = "mutated"

	got, ok := env.store.Get(l.ID)
	require.True(t, ok)
	assert.Equal(t, "x", got.Words[0])
}

func TestDelete(t *testing.T) {
	env := newTestStore(t)
	ctx := context.Background()

	a, err := env.store.Create(ctx, "Animaux", "chat")
	require.NoError(t, err)
	b, err := env.store.Create(ctx, "Couleurs", "rouge")
	require.NoError(t, err)
	env.events = nil

	removed, err := env.store.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Animaux", removed.Name)

	for _, l := range env.store.List() {
		assert.NotEqual(t, a.ID, l.ID)
	}
	_, ok := env.store.Get(b.ID)
	assert.True(t, ok)
	assert.Equal(t, 3, env.slot.Saves())
	assert.Equal(t, []event.Event{event.Success(`List "Animaux" deleted`)}, env.events)
}

func TestDelete_Missing(t *testing.T) {
	env := newTestStore(t)

	_, err := env.store.Delete(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Zero(t, env.slot.Saves())
	require.Len(t, env.events, 1)
	assert.Equal(t, event.KindError, env.events[0].Kind)
}

func TestPersistenceRoundTrip(t *testing.T) {
	env := newTestStore(t)
	ctx := context.Background()

	a, err := env.store.Create(ctx, "Animaux", "chat\nchien")
	require.NoError(t, err)
	_, err = env.store.Create(ctx, "Couleurs", "rouge")
	require.NoError(t, err)

	reopened, err := Open(ctx, env.slot)
	require.NoError(t, err)

	lists := reopened.List()
	require.Len(t, lists, 2)
	assert.Equal(t, a.ID, lists[0].ID)
	assert.Equal(t, a.Words, lists[0].Words)
	assert.Equal(t, a.Color, lists[0].Color)
	assert.True(t, fixedNow.Equal(lists[0].CreatedAt))
	assert.Equal(t, "Couleurs", lists[1].Name)
}

type failingSlot struct {
	storage.MemorySlot
	loadErr error
	saveErr error
}

func (f *failingSlot) Load(ctx context.Context) ([]byte, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.MemorySlot.Load(ctx)
}

func (f *failingSlot) Save(ctx context.Context, data []byte) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	return f.MemorySlot.Save(ctx, data)
}

func TestOpen_LoadError(t *testing.T) {
	_, err := Open(context.Background(), &failingSlot{loadErr: errors.New("disk gone")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
}

func TestCreate_SaveErrorLeavesStoreUnchanged(t *testing.T) {
	slot := &failingSlot{}
	store, err := Open(context.Background(), slot)
	require.NoError(t, err)

	slot.saveErr = errors.New("read-only")
	_, err = store.Create(context.Background(), "A", "x")
	require.Error(t, err)
	assert.Zero(t, store.Len())
}

func TestDelete_SaveErrorLeavesStoreUnchanged(t *testing.T) {
	slot := &failingSlot{}
	store, err := Open(context.Background(), slot)
	require.NoError(t, err)
	l, err := store.Create(context.Background(), "A", "x")
	require.NoError(t, err)

	slot.saveErr = errors.New("read-only")
	_, err = store.Delete(context.Background(), l.ID)
	require.Error(t, err)
	assert.Equal(t, 1, store.Len())
}
