package response

type DashboardStats struct {
	TotalUsers    int64 `json:"totalUsers"`
	TotalClients  int64 `json:"totalClients"`
	ActiveClients int64 `json:"activeClients"`
	TotalFeatures int64 `json:"totalFeatures"`
	TotalBanners  int64 `json:"totalBanners"`
	ActiveBanners int64 `json:"activeBanners"`
	TotalCharts   int64 `json:"totalCharts"`
	TotalTeams    int64 `json:"totalTeams"`
}
