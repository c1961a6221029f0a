package picker

// File is a candidate or accepted file: the metadata the browser declares
// plus the content bytes delivered by the intake handler.
type File struct {
	// Name is the original filename from the client.
	Name string

	// ContentType is the declared MIME type. Not trusted beyond accept
	// pattern matching; previews are served with this type.
	ContentType string

	// Size is the declared size in bytes.
	Size int64

	// Data is the file content.
	Data []byte
}
