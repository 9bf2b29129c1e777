package theme

type Typography struct {
	Header     int32
	Body       int32
	Small      int32
	Log        int32
	LineFactor float32
}

var Type = Typography{
	Header:     20,
	Body:       18,
	Small:      15,
	Log:        16,
	LineFactor: 1.3,
}
