package voxel

const (
	EMPTY byte = 0

	DEFAULT_CHUNK_SIZE = 16
	DEFAULT_BLOCK_SIZE = float32(1)
)
