package types

type FileUploaderType interface {
	UploadFile(data []byte, fileName string) (*string, error)
	GeneratedSignedURL(fileName string, permission SignedURLPermission) (*string, error)
	CheckFileExists(fileName string) (bool, error)
	DeleteFile(fileName string) error
}

type SignedURLPermission struct {
	Read   bool `json:"read"`
	Write  bool `json:"write"`
	Delete bool `json:"delete"`
}
