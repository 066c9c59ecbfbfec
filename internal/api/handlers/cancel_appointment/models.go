package cancel_appointment

// CancelAppointmentResponse HTTP модель результата отмены
type CancelAppointmentResponse struct {
	BookingID string `json:"bookingId"`
	Status    string `json:"status"` // всегда "cancelled"
}
