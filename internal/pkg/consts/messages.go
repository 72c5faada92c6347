package consts

const (
	SignupSuccess       = "User registered successfully"
	LoginSuccess        = "Login successful"
	ApplicationCreated  = "Loan application submitted successfully"
	StatusUpdated       = "Application status updated"
	ReportUploaded      = "Report uploaded to GCS Bucket"
	HealthCheckMessage  = "Health Check"
	MissingFields       = "Missing required fields"
	EmailAlreadyInUse   = "Email already registered"
	InvalidCredentials  = "Invalid email or password"
	MissingToken        = "Authorization token required"
	InvalidToken        = "Invalid or expired token"
	AdminOnly           = "Admin access required"
	ApplicationNotFound = "Application not found"
)

const (
	EventApplicationCreated       = "application.created"
	EventApplicationStatusChanged = "application.status_changed"
)
