package request

// FileUpload is a multipart file already read into memory.
type FileUpload struct {
	Filename string
	Data     []byte
}
