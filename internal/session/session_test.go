package session

import (
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-etl-designer/internal/model"
)

func TestNewSessionDefaults(t *testing.T) {
	s := New("abc")

	assert.Equal(t, model.DefaultSourceName, s.Source().Name)
	assert.Nil(t, s.Table())
	assert.Equal(t, 0, s.Pipeline().Len())

	view := s.View()
	assert.Equal(t, "abc", view.ID)
	assert.Empty(t, view.Columns)
	assert.Empty(t, view.Steps)
}

func TestAddStepGuard(t *testing.T) {
	s := New("abc")

	_, ok := s.AddStep(model.DropColumns())
	assert.False(t, ok)
	_, ok = s.AddStep(model.FilterRows("y", model.OperatorEquals, ""))
	assert.False(t, ok)
	_, ok = s.AddStep(model.Aggregate(nil, "sales", model.AggSum))
	assert.False(t, ok)
	assert.Equal(t, 0, s.Pipeline().Len())

	added, ok := s.AddStep(model.DropColumns("x"))
	require.True(t, ok)
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, 1, s.Pipeline().Len())
}

func TestSessionScriptFollowsUpload(t *testing.T) {
	s := New("abc")
	s.AddStep(model.DropColumns("x"))

	assert.Contains(t, s.Script(""), `pd.read_csv("input.csv")`)

	s.SetSource("sales.csv", &model.Table{Columns: []string{"x", "sales"}, NumericColumns: []string{"sales"}})
	script := s.Script("clean.csv")
	assert.Contains(t, script, `pd.read_csv("sales.csv")`)
	assert.Contains(t, script, `df.to_csv("clean.csv", index=False)`)
	assert.Contains(t, script, "df = df.drop(columns=['x'])")

	view := s.View()
	assert.Equal(t, "sales.csv", view.Source)
	assert.Equal(t, []string{"x", "sales"}, view.Columns)
	assert.Equal(t, []string{"sales"}, view.NumericColumns)
	require.Len(t, view.Steps, 1)
	assert.Equal(t, "Drop columns: x", view.Steps[0].Label)
}

func TestStore(t *testing.T) {
	st := NewStore()
	a := st.Create()
	b := st.Create()
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, st.Len())

	got, err := st.Get(a.ID)
	require.NoError(t, err)
	assert.Same(t, a, got)

	require.NoError(t, st.Delete(a.ID))
	_, err = st.Get(a.ID)
	assert.True(t, errors.Is(err, ErrSessionNotFound))
	assert.True(t, errors.Is(st.Delete(a.ID), ErrSessionNotFound))
	assert.Equal(t, 1, st.Len())
}

func TestSessionsAreIndependent(t *testing.T) {
	st := NewStore()
	a := st.Create()
	b := st.Create()

	a.Do(func(s *Session) { s.AddStep(model.DropColumns("x")) })

	assert.Equal(t, 1, a.Pipeline().Len())
	assert.Equal(t, 0, b.Pipeline().Len())
}

func TestSessionDoSerialisesActions(t *testing.T) {
	s := New("abc")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Do(func(s *Session) { s.AddStep(model.DropColumns("x")) })
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, s.Pipeline().Len())
}
