package anchor

// AdjustForInsertion returns where an offset ends up after length bytes are
// inserted at insertOffset. Offsets at the insertion point move to the end
// of the inserted text.
func AdjustForInsertion(offset, insertOffset, length ByteOffset) ByteOffset {
	if offset < insertOffset {
		return offset
	}
	return offset + length
}

// AdjustForDeletion returns where an offset ends up after the half-open range
// [deleteOffset, deleteOffset+length) is removed. Offsets inside the range
// collapse to its start.
func AdjustForDeletion(offset, deleteOffset, length ByteOffset) ByteOffset {
	if offset < deleteOffset {
		return offset
	}
	if offset < deleteOffset+length {
		return deleteOffset
	}
	return offset - length
}
