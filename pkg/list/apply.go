package list

// Apply mutates l according to m. Every kind is idempotent and tolerates a
// missing target as a silent no-op: the optimistic-apply-then-echo pattern
// means the same message is routinely applied more than once, and the second
// application must be harmless.
func Apply(l *List, m Message) {
	switch m.Type {
	case TypeInit:
		// wholesale replacement with the authoritative snapshot
		if m.List != nil {
			*l = m.List.Clone()
		}
	case TypeUpdateName:
		l.Name = m.Name
	case TypeAdd:
		// a duplicate add would double-insert the optimistic copy
		if l.find(m.Todo.ID) < 0 {
			l.Todos = append(l.Todos, *m.Todo)
		}
	case TypeUpdate:
		if i := l.find(m.Todo.ID); i >= 0 {
			l.Todos[i] = *m.Todo
		}
	case TypeDelete:
		if i := l.find(m.ID); i >= 0 {
			l.Todos = append(l.Todos[:i], l.Todos[i+1:]...)
		}
	case TypeDeleteCompleted:
		kept := l.Todos[:0]
		for _, t := range l.Todos {
			if !t.Completed {
				kept = append(kept, t)
			}
		}
		l.Todos = kept
	case TypeTextUpdate:
		if i := l.find(m.ID); i >= 0 {
			l.Todos[i].Text = m.Text
		}
	}
}
