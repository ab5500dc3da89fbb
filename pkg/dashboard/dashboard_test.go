package dashboard

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodtracker/domain"
	"foodtracker/internal/utils"
	"foodtracker/pkg/entry"
)

type spyNavigator struct {
	routes []string
}

func (n *spyNavigator) NavigateTo(route string) {
	n.routes = append(n.routes, route)
}

func confirmAlways(string) bool { return true }

func seedEntries(t *testing.T, svc entry.EntryService, names ...string) {
	t.Helper()
	for _, name := range names {
		_, err := svc.CreateEntry(context.Background(), domain.FoodEntryDraft{
			Name: name,
			Meal: domain.MealLunch,
			Date: "2024-01-01",
		})
		require.NoError(t, err)
	}
}

func newTestViewModel(t *testing.T, pageSize int, names ...string) (*ViewModel, entry.EntryService, *spyNavigator) {
	t.Helper()
	utils.InitValidator()
	svc := entry.NewEntryService(entry.NewMemoryEntryRepository(), utils.Validate)
	seedEntries(t, svc, names...)
	nav := &spyNavigator{}
	vm := NewViewModel(svc, nav, confirmAlways, pageSize)
	require.NoError(t, vm.Refresh(context.Background()))
	return vm, svc, nav
}

func numberedNames(n int) []string {
	names := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		names = append(names, fmt.Sprintf("entry %02d", i))
	}
	return names
}

func TestView_FilterMatchesSubstring(t *testing.T) {
	vm, _, _ := newTestViewModel(t, 5,
		"ส้มตำ", "ผัดไทย", "ข้าวผัด", "ต้มยำกุ้ง", "ผัดกะเพรา")

	vm.SetSearchTerm("ผัด")
	view := vm.View()

	require.Len(t, view.Items, 3)
	assert.Equal(t, "ผัดไทย", view.Items[0].Name)
	assert.Equal(t, "ข้าวผัด", view.Items[1].Name)
	assert.Equal(t, "ผัดกะเพรา", view.Items[2].Name)
	assert.False(t, view.Empty)
}

func TestView_FilterIsCaseInsensitive(t *testing.T) {
	vm, _, _ := newTestViewModel(t, 5, "Pad Thai", "Green Curry", "Tom Yum")

	vm.SetSearchTerm("PAD")
	view := vm.View()

	require.Len(t, view.Items, 1)
	assert.Equal(t, "Pad Thai", view.Items[0].Name)
}

func TestView_EmptyTermShowsEverything(t *testing.T) {
	vm, _, _ := newTestViewModel(t, 5, "ส้มตำ", "ผัดไทย")

	vm.SetSearchTerm("ผัด")
	vm.SetSearchTerm("")
	view := vm.View()

	assert.Len(t, view.Items, 2)
	assert.Equal(t, 1, view.TotalPages)
}

func TestView_NoMatches(t *testing.T) {
	vm, _, _ := newTestViewModel(t, 5, "ส้มตำ", "ผัดไทย")

	vm.SetSearchTerm("พิซซ่า")
	view := vm.View()

	assert.Empty(t, view.Items)
	assert.True(t, view.Empty)
	assert.Equal(t, 0, view.TotalPages)
	assert.False(t, view.ShowPagination)
}

func TestView_PaginationWindows(t *testing.T) {
	vm, _, _ := newTestViewModel(t, 5, numberedNames(12)...)

	view := vm.View()
	assert.Equal(t, 3, view.TotalPages)
	assert.True(t, view.ShowPagination)
	require.Len(t, view.Items, 5)
	assert.Equal(t, "entry 01", view.Items[0].Name)
	assert.Equal(t, "entry 05", view.Items[4].Name)

	vm.SetPage(2)
	view = vm.View()
	require.Len(t, view.Items, 5)
	assert.Equal(t, "entry 06", view.Items[0].Name)
	assert.Equal(t, "entry 10", view.Items[4].Name)

	vm.SetPage(3)
	view = vm.View()
	require.Len(t, view.Items, 2, "the last page holds the remainder")
	assert.Equal(t, "entry 11", view.Items[0].Name)
	assert.Equal(t, "entry 12", view.Items[1].Name)
}

func TestView_ExactPageBoundary(t *testing.T) {
	vm, _, _ := newTestViewModel(t, 5, numberedNames(10)...)

	view := vm.View()
	assert.Equal(t, 2, view.TotalPages)

	vm.SetPage(2)
	assert.Len(t, vm.View().Items, 5)
}

func TestView_SinglePageHidesPagination(t *testing.T) {
	vm, _, _ := newTestViewModel(t, 5, numberedNames(4)...)

	view := vm.View()
	assert.Equal(t, 1, view.TotalPages)
	assert.False(t, view.ShowPagination)
}

func TestSetPage_Clamps(t *testing.T) {
	vm, _, _ := newTestViewModel(t, 5, numberedNames(12)...)

	vm.SetPage(99)
	assert.Equal(t, 3, vm.View().Page)

	vm.SetPage(0)
	assert.Equal(t, 1, vm.View().Page)

	vm.SetPage(-3)
	assert.Equal(t, 1, vm.View().Page)
}

func TestSetSearchTerm_ResetsPage(t *testing.T) {
	vm, _, _ := newTestViewModel(t, 5, numberedNames(12)...)

	vm.SetPage(3)
	require.Equal(t, 3, vm.View().Page)

	vm.SetSearchTerm("entry")
	assert.Equal(t, 1, vm.View().Page)
}

func TestView_FilterShrinksPageCount(t *testing.T) {
	names := append(numberedNames(10), "ผัดไทย", "ผัดกะเพรา")
	vm, _, _ := newTestViewModel(t, 5, names...)

	vm.SetPage(3)
	vm.SetSearchTerm("ผัด")
	view := vm.View()

	assert.Equal(t, 1, view.TotalPages)
	assert.Equal(t, 1, view.Page)
	assert.Len(t, view.Items, 2)
}

func TestRequestEdit_NavigatesToEditForm(t *testing.T) {
	vm, svc, nav := newTestViewModel(t, 5, "ส้มตำ")

	list, err := svc.ListEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)

	vm.RequestEdit(list[0].ID)
	assert.Equal(t, []string{domain.RouteUpdateFood + "/" + list[0].ID}, nav.routes)
}

func TestRequestDelete_Declined(t *testing.T) {
	utils.InitValidator()
	svc := entry.NewEntryService(entry.NewMemoryEntryRepository(), utils.Validate)
	seedEntries(t, svc, "ส้มตำ")
	vm := NewViewModel(svc, &spyNavigator{}, func(string) bool { return false }, 5)
	require.NoError(t, vm.Refresh(context.Background()))

	list, err := svc.ListEntries(context.Background())
	require.NoError(t, err)

	require.NoError(t, vm.RequestDelete(context.Background(), list[0].ID))

	list, err = svc.ListEntries(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1, "a declined confirmation must not delete")
}

func TestRequestDelete_Confirmed(t *testing.T) {
	vm, svc, _ := newTestViewModel(t, 5, "ส้มตำ", "ผัดไทย")

	list, err := svc.ListEntries(context.Background())
	require.NoError(t, err)

	require.NoError(t, vm.RequestDelete(context.Background(), list[0].ID))

	view := vm.View()
	require.Len(t, view.Items, 1, "the view refreshes after the gateway confirms")
	assert.Equal(t, "ผัดไทย", view.Items[0].Name)
}

func TestRequestDelete_UnknownID(t *testing.T) {
	vm, _, _ := newTestViewModel(t, 5, "ส้มตำ")

	err := vm.RequestDelete(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrEntryNotFound)
}
