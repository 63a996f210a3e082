package trip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maproute/pkg/model"
)

func seq(n int) *int { return &n }

func stop(name, time string, sequence *int) *model.Location {
	return &model.Location{Name: name, Time: time, Sequence: sequence, Description: "about " + name}
}

func TestSortedOrdering(t *testing.T) {
	// Primary key sequence ascending, nil last; time only breaks ties.
	a := stop("A", "10:00", seq(3))
	b := stop("B", "09:00", seq(1))
	c := stop("C", "08:00", nil)
	d := stop("D", "11:00", seq(2))

	it := New()
	for _, l := range []*model.Location{a, b, c, d} {
		it.Register(l)
	}

	got := it.Sorted()
	want := []*model.Location{b, d, a, c}
	require.Len(t, got, 4)
	for i := range want {
		assert.Same(t, want[i], got[i], "position %d", i)
	}
}

func TestSortedTimeBreaksTies(t *testing.T) {
	late := stop("Late", "14:00", nil)
	early := stop("Early", "09:30", nil)

	it := New()
	it.Register(late)
	it.Register(early)

	got := it.Sorted()
	assert.Equal(t, "Early", got[0].Name)
	assert.Equal(t, "Late", got[1].Name)
}

func TestBuildInterleavesTransportRows(t *testing.T) {
	a := stop("Museum", "09:00", seq(1))
	b := stop("Park", "11:00", seq(2))
	c := stop("Harbor", "14:00", seq(3))
	locations := []*model.Location{a, b, c}

	routes := []*model.Route{
		{Name: "Walk from Museum to Park", Transport: "walking", TravelTime: "15 minutes"},
		// No route mentions Harbor or Park->Harbor travel info is absent.
	}

	it := New()
	for _, l := range locations {
		it.Register(l)
	}

	rows := it.Build(locations, routes)
	require.Len(t, rows, 5) // three stops, one transport leg, plus the second leg reuses the Park route

	assert.Equal(t, model.RowStop, rows[0].Kind)
	assert.Equal(t, "Museum", rows[0].Title)
	assert.Equal(t, 0, rows[0].LocationIndex)

	assert.Equal(t, model.RowTransport, rows[1].Kind)
	assert.Equal(t, "walking", rows[1].Transport)
	assert.Equal(t, model.TransportWalk, rows[1].Icon)
	assert.Equal(t, "15 minutes", rows[1].TravelTime)

	assert.Equal(t, "Park", rows[2].Title)
}

func TestBuildNoTransportRowWithoutMatch(t *testing.T) {
	a := stop("A", "09:00", seq(1))
	b := stop("B", "10:00", seq(2))
	locations := []*model.Location{a, b}

	it := New()
	it.Register(a)
	it.Register(b)

	rows := it.Build(locations, []*model.Route{{Name: "Unrelated connection"}})
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, model.RowStop, r.Kind)
	}
}

func TestBuildFlexibleTimeFallback(t *testing.T) {
	a := stop("A", "", seq(1))
	it := New()
	it.Register(a)

	rows := it.Build([]*model.Location{a}, nil)
	require.Len(t, rows, 1)
	assert.Equal(t, "Flexible", rows[0].Time)
}

func TestFindConnecting(t *testing.T) {
	a := &model.Location{Name: "Monas"}
	b := &model.Location{Name: "Kota Tua"}
	routes := []*model.Route{
		{Name: "Ferry across the bay"},
		{Name: "Bus from Monas onward", Transport: "bus"},
		{Name: "Walk to Kota Tua", Transport: "walking"},
	}

	got := FindConnecting(routes, a, b)
	require.NotNil(t, got)
	assert.Equal(t, "Bus from Monas onward", got.Name, "first match wins")

	assert.Nil(t, FindConnecting(routes, &model.Location{Name: "X"}, &model.Location{Name: "Y"}))
}

func TestReset(t *testing.T) {
	it := New()
	it.Register(stop("A", "09:00", seq(1)))
	it.Reset()
	assert.Zero(t, it.Len())
	assert.Empty(t, it.Sorted())
}
