package constants

const (
	CHANNEL_SIZE    = 100 // chat broker channel size
	MAIL_QUEUE_SIZE = 256 // buffered outbound mail queue
	REDIS_TIMEOUT   = 1   // redis cache timeout (minutes)
)
