package consts

const (
	UsersCollection                = "Users"
	ProfilesCollection             = "Profiles"
	UserLoanApplicationsCollection = "UserLoanApplications"
	AllApplicationsCollection      = "AllApplications"
)
