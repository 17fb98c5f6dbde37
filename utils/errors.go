package utils

import "fmt"

// WrapEncodeError returns a wrapped encode error
func WrapEncodeError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("encode error: %w", err)
}

// WrapReadError returns a wrapped read error
func WrapReadError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("read error: %w", err)
}

// WrapWriteError returns a wrapped write error
func WrapWriteError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("write error: %w", err)
}

// WrapCloseError returns a wrapped close error
func WrapCloseError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("close error: %w", err)
}

// WrapRequestError returns a wrapped request error
func WrapRequestError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("request error: %w", err)
}

// WrapDecodeError returns a wrapped decode error
func WrapDecodeError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("decode error: %w", err)
}
