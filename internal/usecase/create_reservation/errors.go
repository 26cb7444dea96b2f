package create_reservation

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_reservation: service not found")

	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("create_reservation: room not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

// MsgHotelClosed сообщение ошибки валидации для поля checkIn
const MsgHotelClosed = "Hotel is not open for the selected dates"
