package preference

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

type ThemeResponse struct {
	Theme string `json:"theme"`
}
