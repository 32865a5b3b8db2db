package display

import "tinygo.org/x/drivers/hd44780i2c"

// HD44780 adapts an HD44780-compatible character LCD behind a PCF8574 I2C
// backpack to the Display contract. The caller owns bus setup and device
// configuration:
//
//	lcd := hd44780i2c.New(bus, 0x27)
//	lcd.Configure(hd44780i2c.Config{Width: 20, Height: 4})
//	d := display.NewHD44780(&lcd)
//
// The driver's write methods report nothing, so this adapter always returns
// a nil error.
type HD44780 struct {
	dev *hd44780i2c.Device
}

// NewHD44780 wraps a configured hd44780i2c device.
func NewHD44780(dev *hd44780i2c.Device) *HD44780 {
	return &HD44780{dev: dev}
}

func (d *HD44780) WriteLine(row int, text string) error {
	d.dev.SetCursor(0, uint8(row))
	d.dev.Print([]byte(text))
	return nil
}

func (d *HD44780) SetCursor(row, col int) error {
	d.dev.SetCursor(uint8(col), uint8(row))
	return nil
}

func (d *HD44780) Clear() error {
	d.dev.ClearDisplay()
	return nil
}
