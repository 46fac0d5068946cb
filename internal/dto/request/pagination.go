package request

import "insekta-dashboard/pkg/utils"

type PaginatedRequest struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Normalize clamps Page and Limit, using defaultLimit when none was given.
func (p *PaginatedRequest) Normalize(defaultLimit int) {
	p.Page, p.Limit = utils.NormalizePage(p.Page, p.Limit, defaultLimit)
}

func (p PaginatedRequest) Offset() int {
	return utils.CalculateOffset(p.Page, p.Limit)
}
