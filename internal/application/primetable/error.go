package primetable

type ErrArgCount struct {
	Count int
}

func (e ErrArgCount) Error() string {
	return "Wrong number of arguments!"
}

type ErrUnknownMode struct {
	Mode string
}

func (e ErrUnknownMode) Error() string {
	return "Unrecognized mode!"
}
