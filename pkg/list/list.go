package list

import "sort"

// Todo is a single entry in a shared list. The id is generated by whichever
// client created the entry and never changes afterwards.
type Todo struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Amount    string `json:"amount,omitempty"`
	Unit      string `json:"unit,omitempty"`
	Completed bool   `json:"completed"`
	CreatedAt int64  `json:"createdAt"`
}

// List is the unit of synchronization: everyone connected with the same list
// id sees and edits the same Todos. Storage order of Todos carries no meaning,
// display order is derived from CreatedAt.
type List struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Todos     []Todo `json:"todos"`
	CreatedAt int64  `json:"createdAt"`
}

// Clone returns a deep copy so callers can hand out snapshots without
// exposing the authoritative slice to concurrent mutation.
func (l *List) Clone() List {
	out := *l
	out.Todos = make([]Todo, len(l.Todos))
	copy(out.Todos, l.Todos)
	return out
}

func (l *List) find(id string) int {
	for i := range l.Todos {
		if l.Todos[i].ID == id {
			return i
		}
	}
	return -1
}

// SortedForDisplay returns the todos newest-first.
func (l *List) SortedForDisplay() []Todo {
	out := make([]Todo, len(l.Todos))
	copy(out, l.Todos)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out
}
