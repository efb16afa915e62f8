package array

// LoadAll reads every entry of the array file at path into memory, decoded
// to text offsets. Used by package sorter, which needs random access to
// the whole vector to sort it; package search never loads an array this
// way — it stays memory-mapped.
func LoadAll(path string, width int) ([]int, error) {
	v, err := Open(path, width)
	if err != nil {
		return nil, err
	}
	defer v.Close()

	n := v.Len()
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = v.At(i)
	}
	return out, nil
}

// WriteAll overwrites the array file at path with entries, encoded
// big-endian at the given width.
func WriteAll(path string, width int, entries []int) error {
	w, err := CreateWriter(path, width)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := w.Write(e); err != nil {
			w.Close()
			return err
		}
	}
	return w.Close()
}
