/*
 * Copyright 2020 Dennis Kuhnert
 * Copyright 2020 Ivanov Nikita
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *        http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */
package kdtree

import (
	"fmt"
	"math"
	"sort"
)

// relative slack for the pruning test, so rounding in distFn never hides
// an equidistant point with a lower ID on the far side of a split.
const pruneSlack = 1e-9

type Point interface {
	Dim(idx int) float64
	Dimensions() int
	Points() []float64
}

type entry struct {
	point Point
	id    int
}

func New(distFn func(vec, vec1 []float64) (float64, error)) *Tree {
	return &Tree{
		root:   nil,
		len:    0,
		distFn: distFn,
	}
}

// Tree is a kd-tree whose points carry the ID of their insertion order.
type Tree struct {
	root   *node
	len    int
	distFn func(vec, vec1 []float64) (float64, error)
}

// Build replaces the tree content; point i gets ID i. The input slice is not reordered.
func (t *Tree) Build(points ...Point) {
	entries := make([]entry, len(points))
	for i := range points {
		entries[i] = entry{point: points[i], id: i}
	}
	t.len = len(points)
	t.root = buildTreeRecursive(entries, 0)
}

func (t *Tree) Len() int {
	return t.len
}

// Nearest returns the ID and distance of the closest point. Among equidistant
// points the lowest ID wins. ok is false when no point has a finite distance.
func (t *Tree) Nearest(p Point) (id int, distance float64, ok bool, err error) {
	if t.root == nil {
		return 0, 0, false, fmt.Errorf("root is nil")
	}
	best := candidate{id: -1, distance: math.Inf(1)}
	if err := t.nearest(p, t.root, 0, &best); err != nil {
		return 0, 0, false, err
	}
	if best.id < 0 {
		return 0, 0, false, nil
	}
	return best.id, best.distance, true, nil
}

type candidate struct {
	id       int
	distance float64
}

func (t *Tree) nearest(p Point, current *node, dim int, best *candidate) error {
	if current == nil {
		return nil
	}
	currentDistance, err := t.distFn(p.Points(), current.Key.Points())
	if err != nil {
		return fmt.Errorf("compute nearest error: %w", err)
	}
	if currentDistance < best.distance ||
		(best.id >= 0 && currentDistance == best.distance && current.ID < best.id) {
		best.id, best.distance = current.ID, currentDistance
	}

	var near, far *node
	if p.Dim(dim) < current.Key.Dim(dim) {
		near, far = current.Left, current.Right
	} else {
		near, far = current.Right, current.Left
	}
	nextDim := (dim + 1) % p.Dimensions()
	if err := t.nearest(p, near, nextDim, best); err != nil {
		return err
	}
	if distanceForDimension(p, current.Key, dim) <= best.distance+pruneSlack*math.Max(1, best.distance) {
		return t.nearest(p, far, nextDim, best)
	}
	return nil
}

func buildTreeRecursive(entries []entry, dim int) *node {
	if len(entries) == 0 {
		return nil
	}
	if len(entries) == 1 {
		return &node{Key: entries[0].point, ID: entries[0].id}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].point.Dim(dim) < entries[j].point.Dim(dim)
	})
	mid := len(entries) / 2
	root := entries[mid]
	nextDim := (dim + 1) % root.point.Dimensions()
	return &node{
		Key:   root.point,
		ID:    root.id,
		Left:  buildTreeRecursive(entries[:mid], nextDim),
		Right: buildTreeRecursive(entries[mid+1:], nextDim),
	}
}

func distanceForDimension(vec, vec1 Point, dim int) float64 {
	return math.Abs(vec1.Dim(dim) - vec.Dim(dim))
}
