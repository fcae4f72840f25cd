package pdfexport

import (
	"bytes"
	"fmt"
	"strings"

	candidateapimodels "connect-skills-backend/models/api/candidate"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

// GenerateProfileCard renders a one-page candidate summary. The photo is
// optional, an empty body skips the image block.
func GenerateProfileCard(view candidateapimodels.CandidateView, photoName string, photoBody []byte) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateProfileCard panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "", 14)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	if len(photoBody) != 0 {
		if err = putImg(pdf, photoName, photoBody); err != nil {
			return nil, err
		}
		pdf.Image(photoName, 10, 12, 30, 0, false, "", 0, "")
		pdf.SetLeftMargin(45)
	}

	_, lineHt := pdf.GetFontSize()
	html := pdf.HTMLBasicNew()
	htmlStr := fmt.Sprintf("<b>%v %v</b><br>", view.FirstName, view.LastName) +
		fmt.Sprintf("%v<br>", view.City) +
		fmt.Sprintf("%v<br>", view.Phone)
	html.Write(lineHt, htmlStr)
	pdf.SetLeftMargin(10)

	posY := pdf.GetY()
	if posY < 50 {
		posY = 50
		pdf.SetY(posY)
	}

	htmlStr = ""
	if len(view.InterestAreas) != 0 {
		htmlStr += fmt.Sprintf("<b>Interest areas:</b> %v<br>", strings.Join(view.InterestAreas, ", "))
	}
	if view.About != "" {
		htmlStr += fmt.Sprintf("<b>About:</b><br>%v<br>", view.About)
	}
	for _, link := range view.Links {
		htmlStr += fmt.Sprintf("%v: %v<br>", link.Name, link.Url)
	}
	html = pdf.HTMLBasicNew()
	html.Write(lineHt, htmlStr)

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func putImg(pdf *fpdf.Fpdf, fileName string, body []byte) (err error) {
	options := fpdf.ImageOptions{
		ReadDpi:   false,
		ImageType: "",
	}
	if options.ImageType == "" {
		options.ImageType, err = getImgType(fileName)
		if err != nil {
			return err
		}
	}
	reader := bytes.NewReader(body)
	pdf.RegisterImageOptionsReader(fileName, options, reader)
	return pdf.Error()
}

func getImgType(fileName string) (string, error) {
	pos := strings.LastIndex(fileName, ".")
	if pos < 0 {
		return "", errors.Errorf("failed to get file extension: %s", fileName)
	}
	return fileName[pos+1:], nil
}
