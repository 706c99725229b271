package kdtree

type node struct {
	Key   Point
	ID    int
	Left  *node
	Right *node
}
