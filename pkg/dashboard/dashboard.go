package dashboard

import (
	"context"
	"strings"
	"sync"

	"foodtracker/domain"
	"foodtracker/internal/utils"
	"foodtracker/pkg/entry"
)

type (
	// Confirmer is asked before a delete is forwarded to the gateway.
	Confirmer func(id string) bool

	View struct {
		Items          []domain.FoodEntryResponse
		Term           string
		Page           int
		TotalPages     int
		Empty          bool // render the explicit empty-state row
		ShowPagination bool
	}

	// ViewModel presents a searchable, paged view over the entry
	// collection. It never mutates the collection itself: edits and deletes
	// are forwarded to the gateway and the list is re-pulled afterwards.
	ViewModel struct {
		mu       sync.Mutex
		entries  entry.EntryService
		nav      domain.Navigator
		confirm  Confirmer
		pageSize int

		all  []domain.FoodEntryResponse
		term string
		page int
	}
)

func NewViewModel(entries entry.EntryService, nav domain.Navigator, confirm Confirmer, pageSize int) *ViewModel {
	if pageSize <= 0 {
		pageSize = utils.PageSize()
	}
	return &ViewModel{
		entries:  entries,
		nav:      nav,
		confirm:  confirm,
		pageSize: pageSize,
		page:     1,
	}
}

// Refresh re-pulls the collection snapshot from the gateway.
func (vm *ViewModel) Refresh(ctx context.Context) error {
	list, err := vm.entries.ListEntries(ctx)
	if err != nil {
		return err
	}

	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.all = list
	return nil
}

// SetSearchTerm replaces the active filter and resets the view to page 1.
func (vm *ViewModel) SetSearchTerm(term string) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.term = term
	vm.page = 1
}

// SetPage moves to page n, clamped to the valid range for the current
// filter.
func (vm *ViewModel) SetPage(n int) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	totalPages := vm.totalPages(len(vm.filtered()))
	if totalPages < 1 {
		vm.page = 1
		return
	}
	if n < 1 {
		n = 1
	}
	if n > totalPages {
		n = totalPages
	}
	vm.page = n
}

// View derives the current projection: filter, then page window. Entries
// keep the collection's insertion order throughout.
func (vm *ViewModel) View() View {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	filtered := vm.filtered()
	totalPages := vm.totalPages(len(filtered))

	page := vm.page
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * vm.pageSize
	end := start + vm.pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return View{
		Items:          filtered[start:end],
		Term:           vm.term,
		Page:           page,
		TotalPages:     totalPages,
		Empty:          len(filtered) == 0,
		ShowPagination: totalPages > 1,
	}
}

// RequestEdit forwards an edit request as navigation to the edit form.
func (vm *ViewModel) RequestEdit(id string) {
	vm.nav.NavigateTo(domain.EditFoodRoute(id))
}

// RequestDelete asks for confirmation, forwards the delete to the gateway
// and refreshes the collection once the gateway has confirmed. The view
// model never removes the entry optimistically.
func (vm *ViewModel) RequestDelete(ctx context.Context, id string) error {
	if vm.confirm != nil && !vm.confirm(id) {
		return nil
	}
	if err := vm.entries.DeleteEntry(ctx, id); err != nil {
		return err
	}
	return vm.Refresh(ctx)
}

// filtered is called with vm.mu held.
func (vm *ViewModel) filtered() []domain.FoodEntryResponse {
	if vm.term == "" {
		return vm.all
	}
	term := strings.ToLower(vm.term)
	filtered := make([]domain.FoodEntryResponse, 0, len(vm.all))
	for _, e := range vm.all {
		if strings.Contains(strings.ToLower(e.Name), term) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func (vm *ViewModel) totalPages(filteredCount int) int {
	return (filteredCount + vm.pageSize - 1) / vm.pageSize
}
