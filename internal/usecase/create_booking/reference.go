package create_booking

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SorftInn-Web/internal/domain"
)

// UUIDReferenceGenerator строит код вида SFT-XXXXXX из случайного UUID
type UUIDReferenceGenerator struct{}

// NewReference возвращает префикс и 6 символов base36 в верхнем регистре
func (UUIDReferenceGenerator) NewReference() string {
	id := uuid.New()
	code := strings.ToUpper(strconv.FormatUint(binary.BigEndian.Uint64(id[:8]), 36))
	if len(code) < domain.BookingReferenceLength {
		code = strings.Repeat("0", domain.BookingReferenceLength-len(code)) + code
	}
	return domain.BookingReferencePrefix + code[len(code)-domain.BookingReferenceLength:]
}
