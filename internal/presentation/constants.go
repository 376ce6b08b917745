package presentation

const (
	TypeParam    = "type"
	IDParam      = "id"
	ReasonTag    = "X-Reason"
	RequestID    = "X-Request-Id"
	CacheControl = "Cache-Control"
	CachePolicy  = "s-maxage=3600, stale-while-revalidate=86400"
)
