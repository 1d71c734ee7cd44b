package storage

var (
	EncodeKey = encodeKey
	DecodeKey = decodeKey
)
