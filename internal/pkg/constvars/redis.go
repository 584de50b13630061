package constvars

const (
	// list:<resource>:<generation>:<search>:<page>:<page_size>
	RedisKeyEntityListFormat = "list:%s:%d:%s:%d:%d"
	// counter bumped by every mutation of a resource
	RedisKeyEntityListGenerationFormat = "list-gen:%s"
)
