package gefs

import "github.com/lukeroth/gdal"

// Band tags written by the GDAL GRIB driver
const (
	tagComment         = "GRIB_COMMENT"
	tagDiscipline      = "GRIB_DISCIPLINE"
	tagElement         = "GRIB_ELEMENT"
	tagForecastSeconds = "GRIB_FORECAST_SECONDS"
	tagIDs             = "GRIB_IDS"
	tagRefTime         = "GRIB_REF_TIME"
	tagShortName       = "GRIB_SHORT_NAME"
	tagUnit            = "GRIB_UNIT"
	tagValidTime       = "GRIB_VALID_TIME"
)

// bandInfo holds the tags and raster attributes read from a single band
type bandInfo struct {
	Comment         string
	Discipline      string
	Element         string
	ForecastSeconds string
	IDs             string
	RefTime         string
	ShortName       string
	Unit            string
	ValidTime       string
	DataType        string
	NoData          *float64
	Scale           *float64
	Offset          *float64
}

// datasetInfo holds everything the item builder needs from one raster file
type datasetInfo struct {
	XSize        int
	YSize        int
	GeoTransform [6]float64
	Projection   string
	Bands        []bandInfo
}

var readDatasetFunc = readDataset

// readDataset opens the raster at href and extracts per-band GRIB tags. The
// dataset handle is scoped to this function and released on every exit path;
// decoding the GRIB2 payload itself is entirely the raster library's problem.
func readDataset(href string) (*datasetInfo, error) {
	dataset, err := gdal.Open(href, gdal.ReadOnly)
	if err != nil {
		return nil, err
	}
	defer dataset.Close()

	info := datasetInfo{
		XSize:        dataset.RasterXSize(),
		YSize:        dataset.RasterYSize(),
		GeoTransform: dataset.GeoTransform(),
		Projection:   dataset.Projection(),
	}

	for index := 1; index <= dataset.RasterCount(); index++ {
		band := dataset.RasterBand(index)
		curr := bandInfo{
			Comment:         band.MetadataItem(tagComment, ""),
			Discipline:      band.MetadataItem(tagDiscipline, ""),
			Element:         band.MetadataItem(tagElement, ""),
			ForecastSeconds: band.MetadataItem(tagForecastSeconds, ""),
			IDs:             band.MetadataItem(tagIDs, ""),
			RefTime:         band.MetadataItem(tagRefTime, ""),
			ShortName:       band.MetadataItem(tagShortName, ""),
			Unit:            band.MetadataItem(tagUnit, ""),
			ValidTime:       band.MetadataItem(tagValidTime, ""),
			DataType:        band.RasterDataType().Name(),
		}
		if nodata, ok := band.NoDataValue(); ok {
			curr.NoData = &nodata
		}
		if scale, ok := band.GetScale(); ok {
			curr.Scale = &scale
		}
		if offset, ok := band.GetOffset(); ok {
			curr.Offset = &offset
		}
		info.Bands = append(info.Bands, curr)
	}

	return &info, nil
}
