package items

import (
	"fmt"
	"sort"

	"github.com/gammazero/toposort"
)

// Step actions.
const (
	ActionMkdir   = "mkdir"
	ActionWrite   = "write"
	ActionSymlink = "symlink"
	ActionUnlink  = "unlink"
	ActionRmdir   = "rmdir"
)

// Step is one filesystem action of a plan.
type Step struct {
	Action string
	Path   string
	Detail string
}

// PlanOptions selects which operation to plan.
type PlanOptions struct {
	Remove bool
}

// Plan lists the steps Create (or Remove) performs, in an order that respects
// the tree: every directory before its children on create, after them on remove.
// Steps are grouped by depth and keep the order the tree was built in within
// a depth. Siblings run concurrently at execution time, so this is only one
// valid interleaving.
func (r *Root) Plan(opts PlanOptions) ([]Step, error) {
	var nodes []Item
	var edges []toposort.Edge
	children := make(map[int][]int)

	var walk func(parentIdx int, it Item)
	walk = func(parentIdx int, it Item) {
		idx := len(nodes)
		nodes = append(nodes, it)
		if parentIdx >= 0 {
			edges = append(edges, toposort.Edge{parentIdx, idx})
			children[parentIdx] = append(children[parentIdx], idx)
		}
		if p, ok := it.(parent); ok {
			for _, child := range p.Children() {
				walk(idx, child)
			}
		}
	}
	for _, child := range r.children {
		walk(-1, child)
	}

	sorted, err := toposort.Toposort(edges)
	if err != nil {
		return nil, fmt.Errorf("failed to order plan: %w", err)
	}

	// A node's depth is final once the sort reaches it, since its parent came first.
	depth := make([]int, len(nodes))
	for _, id := range sorted {
		idx, ok := id.(int)
		if !ok {
			return nil, fmt.Errorf("unexpected type in topological sort result: %T", id)
		}
		for _, child := range children[idx] {
			depth[child] = depth[idx] + 1
		}
	}

	order := make([]int, len(nodes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return depth[order[i]] < depth[order[j]]
	})
	if opts.Remove {
		for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
			order[i], order[j] = order[j], order[i]
		}
	}

	steps := make([]Step, 0, len(order))
	for _, idx := range order {
		if step, ok := stepFor(nodes[idx], opts.Remove); ok {
			steps = append(steps, step)
		}
	}
	return steps, nil
}

// stepFor returns the step of one item. Directories Remove leaves in place have none.
func stepFor(it Item, remove bool) (Step, bool) {
	switch v := it.(type) {
	case *Dir:
		if remove {
			return Step{Action: ActionRmdir, Path: v.Path()}, v.Removable()
		}
		return Step{Action: ActionMkdir, Path: v.Path()}, true
	case *Symlink:
		if remove {
			return Step{Action: ActionUnlink, Path: v.Path()}, true
		}
		return Step{Action: ActionSymlink, Path: v.Path(), Detail: v.Target()}, true
	default:
		if remove {
			return Step{Action: ActionUnlink, Path: it.Path()}, true
		}
		return Step{Action: ActionWrite, Path: it.Path(), Detail: fmt.Sprintf("%d bytes", len(contentOf(it)))}, true
	}
}

func contentOf(it Item) string {
	if f, ok := it.(*File); ok {
		return f.Content()
	}
	return ""
}
