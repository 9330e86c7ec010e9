package console

import (
	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	"github.com/saylorsolutions/stegx/pkg/lsb"
	"github.com/saylorsolutions/stegx/pkg/seal"
	"github.com/sirupsen/logrus"
)

// Hide prompts for the input image, output image, message, and password, then writes the message into a copy of the input image.
// Nothing is written if the image can't be read or is too small.
func (s *Session) Hide() error {
	lines, err := s.io.promptAll("Input image file:", "Output image file:", "Message to hide:", "Password:")
	if err != nil {
		return err
	}
	var (
		inFile   = lines[0]
		outFile  = lines[1]
		msg      = []byte(lines[2])
		password = []byte(lines[3])
	)

	src, err := s.images.Load(inFile)
	if err != nil {
		return err
	}
	if s.seal != nil {
		msg, err = seal.Seal(s.seal, password, msg)
		if err != nil {
			return err
		}
	}
	s.log.WithFields(logrus.Fields{
		"input":    inFile,
		"payload":  humanize.Bytes(uint64(len(msg))),
		"capacity": humanize.Bytes(uint64(lsb.Capacity(src))),
	}).Debug("Hiding message")

	out, err := lsb.Hide(src, msg, password)
	if err != nil {
		return err
	}
	if err := s.images.Save(out, outFile, s.format); err != nil {
		return err
	}
	s.io.printf("Message saved in %s image.", outFile)
	return nil
}

// Show prompts for an image and password, then prints the message hidden in the image.
func (s *Session) Show() error {
	lines, err := s.io.promptAll("Input image file:", "Password:")
	if err != nil {
		return err
	}
	var (
		inFile   = lines[0]
		password = []byte(lines[1])
	)

	src, err := s.images.Load(inFile)
	if err != nil {
		return err
	}
	msg, err := lsb.Show(src, password)
	if err != nil {
		return err
	}
	s.log.WithField("input", inFile).Debugf("Recovered %s", humanize.Bytes(uint64(len(msg))))
	if s.seal != nil {
		msg, err = seal.Open(password, msg)
		if err != nil {
			return err
		}
	}
	s.io.println("Message:")
	s.io.println(Text(msg))
	return nil
}

// Text renders msg with each byte as the character with the same code point.
// Multi-byte encodings aren't interpreted, so the framing stays byte oriented.
func Text(msg []byte) string {
	return string(lo.Map(msg, func(b byte, _ int) rune {
		return rune(b)
	}))
}
