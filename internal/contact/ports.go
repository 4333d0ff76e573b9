package contact

type ContactServicePort interface {
	Submit(in SubmitInput) (*ContactMessage, error)
	List() ([]ContactMessage, error)
}

var _ ContactServicePort = (*ContactService)(nil)
