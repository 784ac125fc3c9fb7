package apitype

type Command interface {
	IsThrottled() bool
}

type NotThrottled struct {
}

func (s *NotThrottled) IsThrottled() bool {
	return false
}
