package auth

// SetOTPGenerator fija el generador de códigos (tests).
func (uc *AuthUseCase) SetOTPGenerator(f func() (string, error)) { uc.newOTP = f }

var GenerateOTP = generateOTP
