package ports

// ARXMLFinderPort discovers .arxml files below a root directory.
type ARXMLFinderPort interface {
	FindARXML(root string) ([]string, error)
}
