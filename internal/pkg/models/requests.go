package models

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Mobile   string `json:"mobile"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ApplyLoanRequest struct {
	LoanType            string  `json:"loanType"`
	Purpose             string  `json:"purpose"`
	PanNumber           string  `json:"panNumber"`
	RequestedLoanAmount float64 `json:"requestedLoanAmount"`
	TenureMonths        int32   `json:"tenureMonths"`
	MonthlyInstallment  float64 `json:"monthlyInstallment"`
	TotalInterest       float64 `json:"totalInterest"`
	TotalPayable        float64 `json:"totalPayable"`
	DocumentName        string  `json:"documentName"`
}

type StatusUpdateRequest struct {
	Status    string `json:"status"`
	Repayment string `json:"repayment"`
}
