package wsmodels

type ServerMessage struct {
	ToUserID string `json:"-"`
	Time     string `json:"time"`
	Code     string `json:"code"`
	Msg      string `json:"msg"`
}
