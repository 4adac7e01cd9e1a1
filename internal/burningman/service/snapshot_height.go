package service

// SnapshotHeight rounds observedHeight down to a grid checkpoint lying one to two grid
// steps behind it, so that peers whose tips are within the same grid window agree on
// the height (139 -> 120, 140 -> 130, 141 -> 130 for grid 10).
func SnapshotHeight(genesisHeight, observedHeight, grid int) int {
	height := observedHeight
	if floor := genesisHeight + 3*grid; floor > height {
		height = floor
	}
	return height/grid*grid - grid
}
