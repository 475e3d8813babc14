package bankprofile

type UpsertBankProfileRequest struct {
	BankName          string  `json:"bank_name" binding:"required,max=120"`
	Branch            string  `json:"branch" binding:"required,max=120"`
	AccountNumber     string  `json:"account_number" binding:"required,min=4,max=40"`
	AccountHolderName string  `json:"account_holder_name" binding:"required,max=160"`
	PassbookImageRef  *string `json:"passbook_image_ref"`
}

type BankProfileResponse struct {
	StaffID           string  `json:"staff_id"`
	BankName          string  `json:"bank_name"`
	Branch            string  `json:"branch"`
	AccountNumber     string  `json:"account_number"`
	AccountHolderName string  `json:"account_holder_name"`
	PassbookImageRef  *string `json:"passbook_image_ref,omitempty"`
	UpdatedAt         string  `json:"updated_at"`
}
