/*
Package lsb hides a byte message in the least significant bits of an image's pixels, and recovers it again.

# How it works:

The message is screened with a repeating-key XOR (see package xor) using the password, then framed by appending the 3 byte end of message Marker.
Each framed byte is split into 8 bits, most significant bit first, and each bit replaces the least significant bit of one pixel's packed color value.
Pixels are visited in row-major order: bit position pos maps to pixel (pos % width, pos / width).
No other bit of a pixel is changed, and no length or signature is stored.

Recovery reads 8 pixels at a time to rebuild each byte, and stops as soon as the last 3 raw bytes equal the Marker.
Detection happens before unscreening, so a wrong password never prevents the frame from being found, it only garbles the result.

# Important note:

The framing has no escape mechanism.
If the screened message itself contains the Marker sequence, recovery stops at the first occurrence and the message is truncated.
This is a property of the legacy format, which is kept so that images remain compatible.

Lossy image formats will destroy the hidden bits, so only lossless formats should be used to store the result.
*/
package lsb
