package staff

type DisplayInfo struct {
	StaffID  string `json:"staff_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}
