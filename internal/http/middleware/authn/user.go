package authn

type User struct {
	Provider    string
	Subject     string
	Email       string
	DisplayName string
	AccessToken string
}
