package response

type Endpoint struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

type APIStatus struct {
	Message   string     `json:"message"`
	Endpoints []Endpoint `json:"endpoints"`
}
