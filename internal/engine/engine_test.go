package engine

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/danieljhkim/whatnow/internal/config"
	"github.com/danieljhkim/whatnow/internal/prompt"
	"github.com/danieljhkim/whatnow/internal/random"
	"github.com/danieljhkim/whatnow/internal/selector"
	"github.com/danieljhkim/whatnow/internal/state"
)

const testDotfile = "/dots/.whatnow.yml"

// mockStateStore keeps states in memory and records saves.
type mockStateStore struct {
	states    map[string]*state.State
	saves     int
	saveError error
}

func newMockStateStore() *mockStateStore {
	return &mockStateStore{states: make(map[string]*state.State)}
}

func (m *mockStateStore) Load(path string) *state.State {
	st, ok := m.states[path]
	if !ok {
		return state.NewState()
	}
	// Hand out a copy so unsaved mutations are not visible.
	cp := &state.State{
		Projects: append([]state.Project(nil), st.Projects...),
		Counts:   make(state.CountTable, len(st.Counts)),
	}
	for k, v := range st.Counts {
		cp.Counts[k] = v
	}
	return cp
}

func (m *mockStateStore) Save(path string, st *state.State) error {
	if m.saveError != nil {
		return m.saveError
	}
	m.saves++
	m.states[path] = st
	return nil
}

// mockPrompter answers from canned values and records what it was shown.
type mockPrompter struct {
	accept    string
	pick      int
	err       error
	offered   []string
	pickNames []string
}

func (m *mockPrompter) Choose(candidates []selector.Candidate) (string, bool, error) {
	for _, c := range candidates {
		m.offered = append(m.offered, c.Project.Name)
		if m.err != nil {
			return "", false, m.err
		}
		if c.Project.Name == m.accept {
			return c.Project.Name, true, nil
		}
	}
	return "", false, nil
}

func (m *mockPrompter) PickIndex(names []string) (int, error) {
	m.pickNames = names
	if m.err != nil {
		return 0, m.err
	}
	if m.pick < 0 || m.pick >= len(names) {
		return 0, fmt.Errorf("%w: %d", prompt.ErrIndexOutOfRange, m.pick)
	}
	return m.pick, nil
}

func runAndRead() *state.State {
	return &state.State{
		Projects: []state.Project{
			{Name: "run", At: []string{"park"}},
			{Name: "read", At: []string{"home"}},
		},
		Counts: state.CountTable{},
	}
}

func newTestEngine(store *mockStateStore, p *mockPrompter) *Engine {
	return New(store, selector.New(random.Identity{}), p, config.Paths{Dotfile: testDotfile}, nil)
}

func TestSuggest_AcceptsCandidate(t *testing.T) {
	store := newMockStateStore()
	store.states[testDotfile] = runAndRead()
	p := &mockPrompter{accept: "read"}

	result, err := newTestEngine(store, p).Suggest(context.Background(), &SuggestRequest{})
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}

	if !result.Selected || result.Chosen != "read" || result.Count != 1 {
		t.Errorf("unexpected result: %+v", result)
	}
	if got := store.states[testDotfile].Counts; !reflect.DeepEqual(got, state.CountTable{"read": 1}) {
		t.Errorf("Counts = %v, want {read: 1}", got)
	}
	if store.saves != 1 {
		t.Errorf("saves = %d, want 1", store.saves)
	}
}

// Scenario: run at 5, read at 0. Only read is offered; declining it leaves
// the counts unchanged.
func TestSuggest_DeclineOnlyCandidate(t *testing.T) {
	store := newMockStateStore()
	st := runAndRead()
	st.Counts = state.CountTable{"run": 5, "read": 0}
	store.states[testDotfile] = st
	p := &mockPrompter{}

	result, err := newTestEngine(store, p).Suggest(context.Background(), &SuggestRequest{})
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}

	if result.Selected {
		t.Errorf("expected no selection, got %+v", result)
	}
	if !reflect.DeepEqual(p.offered, []string{"read"}) {
		t.Errorf("offered %v, want [read]", p.offered)
	}
	if got := store.states[testDotfile].Counts; !reflect.DeepEqual(got, state.CountTable{"run": 5, "read": 0}) {
		t.Errorf("Counts = %v, want unchanged", got)
	}
	if store.saves != 1 {
		t.Errorf("state should be saved even without a selection, saves = %d", store.saves)
	}
}

func TestSuggest_LocationFilter(t *testing.T) {
	store := newMockStateStore()
	store.states[testDotfile] = runAndRead()
	p := &mockPrompter{}

	_, err := newTestEngine(store, p).Suggest(context.Background(), &SuggestRequest{Filter: selector.AtLocation("park")})
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}
	if !reflect.DeepEqual(p.offered, []string{"run"}) {
		t.Errorf("offered %v, want [run]", p.offered)
	}
}

func TestSuggest_NoProjects(t *testing.T) {
	store := newMockStateStore()
	p := &mockPrompter{accept: "anything"}

	result, err := newTestEngine(store, p).Suggest(context.Background(), &SuggestRequest{})
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}
	if result.Selected || len(result.Candidates) != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
	if store.saves != 1 {
		t.Errorf("saves = %d, want 1", store.saves)
	}
}

func TestSuggest_InputClosedAbortsBeforeSave(t *testing.T) {
	store := newMockStateStore()
	store.states[testDotfile] = runAndRead()
	p := &mockPrompter{err: prompt.ErrInputClosed}

	_, err := newTestEngine(store, p).Suggest(context.Background(), &SuggestRequest{})
	if !errors.Is(err, prompt.ErrInputClosed) {
		t.Errorf("expected ErrInputClosed, got %v", err)
	}
	if store.saves != 0 {
		t.Errorf("saves = %d, want 0", store.saves)
	}
}

func TestIncrement(t *testing.T) {
	t.Run("increments the picked project", func(t *testing.T) {
		store := newMockStateStore()
		store.states[testDotfile] = runAndRead()
		p := &mockPrompter{pick: 1}

		result, err := newTestEngine(store, p).Increment(context.Background())
		if err != nil {
			t.Fatalf("Increment() error = %v", err)
		}

		if result.Project != "read" || result.Count != 1 {
			t.Errorf("unexpected result: %+v", result)
		}
		if !reflect.DeepEqual(p.pickNames, []string{"run", "read"}) {
			t.Errorf("listed %v, want projects in state order", p.pickNames)
		}
		if got := store.states[testDotfile].Counts; !reflect.DeepEqual(got, state.CountTable{"read": 1}) {
			t.Errorf("Counts = %v, want {read: 1}", got)
		}
	})

	t.Run("bad index aborts before save", func(t *testing.T) {
		store := newMockStateStore()
		store.states[testDotfile] = runAndRead()
		p := &mockPrompter{pick: 5}

		_, err := newTestEngine(store, p).Increment(context.Background())
		if !errors.Is(err, prompt.ErrIndexOutOfRange) {
			t.Errorf("expected ErrIndexOutOfRange, got %v", err)
		}
		if store.saves != 0 {
			t.Errorf("saves = %d, want 0", store.saves)
		}
	})
}

func TestReset(t *testing.T) {
	store := newMockStateStore()
	st := runAndRead()
	st.Counts = state.CountTable{"run": 3, "read": 1}
	store.states[testDotfile] = st

	result, err := newTestEngine(store, &mockPrompter{}).Reset(context.Background())
	if err != nil {
		t.Fatalf("Reset() error = %v", err)
	}

	if result.Cleared != 2 {
		t.Errorf("Cleared = %d, want 2", result.Cleared)
	}
	saved := store.states[testDotfile]
	if len(saved.Counts) != 0 {
		t.Errorf("Counts = %v, want {}", saved.Counts)
	}
	if len(saved.Projects) != 2 {
		t.Errorf("reset must not touch projects, got %d", len(saved.Projects))
	}
}

func TestPrune(t *testing.T) {
	store := newMockStateStore()
	st := runAndRead()
	st.Counts = state.CountTable{"run": 3, "swim": 2}
	store.states[testDotfile] = st

	result, err := newTestEngine(store, &mockPrompter{}).Prune(context.Background())
	if err != nil {
		t.Fatalf("Prune() error = %v", err)
	}

	if !reflect.DeepEqual(result.Removed, []string{"swim"}) {
		t.Errorf("Removed = %v, want [swim]", result.Removed)
	}
	if got := store.states[testDotfile].Counts; !reflect.DeepEqual(got, state.CountTable{"run": 3}) {
		t.Errorf("Counts = %v, want {run: 3}", got)
	}
}

func TestReadOnlyOperationsStillSave(t *testing.T) {
	ops := map[string]func(e *Engine) error{
		"path": func(e *Engine) error {
			res, err := e.Path(context.Background())
			if err == nil && res.Path != testDotfile {
				return fmt.Errorf("Path = %q", res.Path)
			}
			return err
		},
		"locations": func(e *Engine) error {
			res, err := e.Locations(context.Background())
			if err == nil && !reflect.DeepEqual(res.Locations, []string{"home", "park"}) {
				return fmt.Errorf("Locations = %v", res.Locations)
			}
			return err
		},
		"list": func(e *Engine) error {
			_, err := e.List(context.Background())
			return err
		},
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			store := newMockStateStore()
			st := runAndRead()
			st.Counts = state.CountTable{"run": 1}
			store.states[testDotfile] = st

			if err := op(newTestEngine(store, &mockPrompter{})); err != nil {
				t.Fatalf("operation failed: %v", err)
			}
			if store.saves != 1 {
				t.Errorf("saves = %d, want 1", store.saves)
			}
			if got := store.states[testDotfile]; !reflect.DeepEqual(got, st) {
				t.Errorf("state changed: %+v", got)
			}
		})
	}
}

func TestList(t *testing.T) {
	store := newMockStateStore()
	st := runAndRead()
	st.Counts = state.CountTable{"run": 5, "read": 1, "gone": 2}
	store.states[testDotfile] = st

	result, err := newTestEngine(store, &mockPrompter{}).List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	want := []ProjectInfo{
		{Name: "run", At: []string{"park"}, Count: 5, Eligible: false},
		{Name: "read", At: []string{"home"}, Count: 1, Eligible: true},
	}
	if !reflect.DeepEqual(result.Projects, want) {
		t.Errorf("Projects = %+v, want %+v", result.Projects, want)
	}
	if result.MinCount != 1 {
		t.Errorf("MinCount = %d, want 1", result.MinCount)
	}
	if !reflect.DeepEqual(result.Orphans, []string{"gone"}) {
		t.Errorf("Orphans = %v, want [gone]", result.Orphans)
	}
}

func TestSaveErrorIsReturned(t *testing.T) {
	store := newMockStateStore()
	store.saveError = errors.New("disk full")

	_, err := newTestEngine(store, &mockPrompter{}).Reset(context.Background())
	if !errors.Is(err, store.saveError) {
		t.Errorf("expected wrapped save error, got %v", err)
	}
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := newMockStateStore()
	_, err := newTestEngine(store, &mockPrompter{}).Reset(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if store.saves != 0 {
		t.Errorf("saves = %d, want 0", store.saves)
	}
}
