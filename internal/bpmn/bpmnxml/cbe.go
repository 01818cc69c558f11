/*
This file is part of the AtomBPMN (R) project.
Copyright (c) 2025 Matreska Market LLC (ООО «Matreska Market»).
Authors: Matreska Team.

This project is dual-licensed under AGPL-3.0 and AtomBPMN Commercial License.
*/

package bpmnxml

// adjacencyFunc returns the ordered list of flow targets leaving id.
type adjacencyFunc func(id string) []string

// bfsWalk traces a single breadth-first walk from start (spec.md §4.5.1):
// it appends each newly visited node to the path in visitation order and
// terminates as soon as an edge would revisit an ID already on the path,
// recording that revisited ID as the walk's final node so a back-edge
// still counts as part of the path.
func bfsWalk(adj adjacencyFunc, start string) []string {
	visited := map[string]bool{start: true}
	path := []string{start}
	queue := []string{start}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		terminated := false
		for _, succ := range adj(node) {
			if visited[succ] {
				path = append(path, succ)
				terminated = true
				break
			}
			visited[succ] = true
			path = append(path, succ)
			queue = append(queue, succ)
		}
		if terminated {
			break
		}
	}

	return path
}

// commonBranchEndpoint computes gateway G's CBE (spec.md §4.5.1): the
// first ID, in the breadth-first walk from starts[0], that also appears
// in every other start's independent walk.
func commonBranchEndpoint(adj adjacencyFunc, starts []string) (string, bool) {
	if len(starts) == 0 {
		return "", false
	}

	paths := make([][]string, len(starts))
	sets := make([]map[string]bool, len(starts))
	for i, s := range starts {
		paths[i] = bfsWalk(adj, s)
		set := make(map[string]bool, len(paths[i]))
		for _, id := range paths[i] {
			set[id] = true
		}
		sets[i] = set
	}

	for _, id := range paths[0] {
		inAll := true
		for i := 1; i < len(sets); i++ {
			if !sets[i][id] {
				inAll = false
				break
			}
		}
		if inAll {
			return id, true
		}
	}

	return "", false
}
