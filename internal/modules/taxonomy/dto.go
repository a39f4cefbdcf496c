package taxonomy

type TermRequest struct {
	Name string `json:"name" binding:"required"`
}
