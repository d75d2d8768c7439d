package types

import "slices"

// Member is an individual to be assigned to exactly one project.
//
// Member names are not required to be unique; two members sharing a name are
// distinct people and are tracked by pointer identity throughout a run.
type Member struct {
	// Name identifies the member in output and error messages.
	Name string

	// prefs is the member's preference stack, ordered from least- to
	// most-preferred. Popping from the end yields the most-preferred
	// remaining project. Entries are consumed and never re-inserted.
	prefs []string
}

// NewMember creates a member with a decoded preference stack.
//
// The stack must be ordered least- to most-preferred (index N-r for rank r),
// as produced by the preference decoder.
//
// Parameters:
//   - name: Member name (non-empty; validated by the allocator)
//   - prefs: Preference stack, least-preferred first
//
// Returns:
//   - *Member: Initialized member
func NewMember(name string, prefs []string) *Member {
	return &Member{Name: name, prefs: prefs}
}

// PopChoice removes and returns the member's most-preferred remaining project.
//
// Returns:
//   - string: Project name ("" if the stack is empty)
//   - bool: false when the stack is exhausted
func (m *Member) PopChoice() (string, bool) {
	if len(m.prefs) == 0 {
		return "", false
	}
	top := m.prefs[len(m.prefs)-1]
	m.prefs = m.prefs[:len(m.prefs)-1]

	return top, true
}

// Remaining reports how many preferences the member has not yet consumed.
func (m *Member) Remaining() int {
	return len(m.prefs)
}

// Group is one project's final membership, in assignment order.
type Group struct {
	// Project is the project name.
	Project string `json:"project" yaml:"project"`

	// Members lists assigned member names. Order reflects the order members
	// were placed or moved in; rebalance insertions append at the end.
	Members []string `json:"members" yaml:"members"`
}

// Roster is the assignment store: the mapping from project to its ordered
// member list.
//
// Projects are created once at setup with empty member lists and are never
// removed during a run; a project with zero final members is valid output.
// The roster is mutated only by the assignment engines and must be treated
// as read-only once Run returns it.
type Roster struct {
	// projects preserves input order for output iteration.
	projects []string
	groups   map[string][]*Member
}

// NewRoster creates an empty roster for the given projects.
//
// Parameters:
//   - projects: Ordered project names (assumed unique; validated upstream)
//
// Returns:
//   - *Roster: Roster with one empty group per project
func NewRoster(projects []string) *Roster {
	r := &Roster{
		projects: slices.Clone(projects),
		groups:   make(map[string][]*Member, len(projects)),
	}
	for _, p := range r.projects {
		r.groups[p] = nil
	}

	return r
}

// Projects returns the project names in input order.
func (r *Roster) Projects() []string {
	return slices.Clone(r.projects)
}

// Count returns the current number of members assigned to a project.
func (r *Roster) Count(project string) int {
	return len(r.groups[project])
}

// Len returns the total number of members across all projects.
func (r *Roster) Len() int {
	total := 0
	for _, g := range r.groups {
		total += len(g)
	}

	return total
}

// Add appends a member to a project's group.
func (r *Roster) Add(project string, m *Member) {
	r.groups[project] = append(r.groups[project], m)
}

// Move transfers a member from one project's group to another, appending at
// the end of the destination group. The member is located by pointer
// identity, so duplicate names cannot cause the wrong person to move.
//
// Returns:
//   - bool: false if the member was not found in the source group
func (r *Roster) Move(m *Member, from, to string) bool {
	group := r.groups[from]
	for i, cur := range group {
		if cur != m {
			continue
		}
		r.groups[from] = append(group[:i:i], group[i+1:]...)
		r.groups[to] = append(r.groups[to], m)

		return true
	}

	return false
}

// Members returns the members currently assigned to a project.
//
// The returned slice is a copy; callers may reorder it freely.
func (r *Roster) Members(project string) []*Member {
	return slices.Clone(r.groups[project])
}

// MembersOf returns the member names assigned to a project, in assignment
// order.
func (r *Roster) MembersOf(project string) []string {
	group := r.groups[project]
	names := make([]string, len(group))
	for i, m := range group {
		names[i] = m.Name
	}

	return names
}

// Groups returns the full assignment, one Group per project in project input
// order.
//
// Returns:
//   - []Group: Final mapping suitable for export or serialization
func (r *Roster) Groups() []Group {
	out := make([]Group, len(r.projects))
	for i, p := range r.projects {
		out[i] = Group{Project: p, Members: r.MembersOf(p)}
	}

	return out
}
