package response

// Detail is the body of every error response and of informational replies.
type Detail struct {
	Detail string `json:"detail"`
}

// PageResponse is one page of a longer list.
type PageResponse[T any] struct {
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	List  []T `json:"list"`
}

// NewPage builds a page, never returning a nil list.
func NewPage[T any](list []T, skip, limit int, total int64) *PageResponse[T] {
	if list == nil {
		list = []T{}
	}
	return &PageResponse[T]{
		Skip:  skip,
		Limit: limit,
		Total: int(total),
		List:  list,
	}
}

// NewDetail builds the body shared by error responses and informational replies.
func NewDetail(message string) *Detail {
	return &Detail{Detail: message}
}
