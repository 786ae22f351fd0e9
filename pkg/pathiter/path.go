package pathiter

// joinPath appends name to dir without cleaning either side, so results
// keep the shape of what the caller typed ("./x" stays "./x/y").
func joinPath(dir, name string, sep byte) string {
	switch {
	case dir == "":
		return name
	case dir[len(dir)-1] == sep:
		return dir + name
	default:
		return dir + string(sep) + name
	}
}
